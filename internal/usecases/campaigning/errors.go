package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrCampaignRequired = errors.New("id da campanha não informado")
	ErrFetchContent     = errors.New("erro ao buscar dados de campanhas no Notion")
)

type CampaignError struct {
	Err     error
	Code    string
	Details string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(baseErr error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
