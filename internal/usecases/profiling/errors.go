package profiling

import (
	"errors"
	"fmt"
)

var (
	ErrMemberRequired = errors.New("id do membro dash não informado")
	ErrFetchProfile   = errors.New("erro ao buscar dados de perfil")
)

type ProfileError struct {
	Err     error
	Code    string
	Details string
}

func (e *ProfileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewProfileError(baseErr error, code string, details string) *ProfileError {
	return &ProfileError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
