package scraping

import (
	"errors"
	"fmt"
)

var (
	ErrJobIDRequired      = errors.New("id do job de scraping não informado")
	ErrCampaignIDRequired = errors.New("id da campanha não informado")
	ErrJobNotFound        = errors.New("acompanhamento de scraping não encontrado")
	ErrGenerateHandle     = errors.New("erro ao gerar identificador do acompanhamento")
)

// Mensagens exibidas ao usuário quando o job termina sem sucesso
const (
	msgRemoteError = "스크래핑 중 오류가 발생했습니다"
	msgTimeout     = "요청 시간이 초과되었습니다"
)

type ScrapeError struct {
	Err     error
	Code    string
	Details string
}

func (e *ScrapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

func NewScrapeError(baseErr error, code string, details string) *ScrapeError {
	return &ScrapeError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
