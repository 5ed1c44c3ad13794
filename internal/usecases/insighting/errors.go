package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrMemberRequired    = errors.New("membro dash não informado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrExternalService   = errors.New("erro ao consultar o backend dash")
)

// InsightError é um erro com o código de API correspondente
type InsightError struct {
	Err     error
	Code    string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(baseErr error, code string, details string) *InsightError {
	return &InsightError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
