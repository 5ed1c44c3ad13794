package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAnalysisType = errors.New("tipo de análise inválido")
	ErrMissingContents     = errors.New("não há conteúdos para analisar")
	ErrMissingProfileData  = errors.New("dados do perfil são obrigatórios")
	ErrMissingAdData       = errors.New("dados de anúncios são obrigatórios")
	ErrMalformedReply      = errors.New("resposta do modelo sem JSON válido")
)

type AnalysisError struct {
	Err     error
	Code    string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(baseErr error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
