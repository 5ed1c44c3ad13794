package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/brand-insights-api/internal/usecases/profiling"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/log"
	"github.com/vfg2006/brand-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte os erros tipados dos casos de uso no erro padronizado da API.
// Erros sem código viram SRV_001 com a mensagem genérica informada.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code, details := apiErrors.ErrInternalServer, ""
	var base error

	var (
		authErr     *authenticating.AuthError
		insightErr  *insighting.InsightError
		campaignErr *campaigning.CampaignError
		profileErr  *profiling.ProfileError
		analysisErr *analyzing.AnalysisError
		scrapeErr   *scraping.ScrapeError
	)

	switch {
	case errors.As(err, &authErr):
		code, details, base = authErr.Code, authErr.Details, authErr.Err
	case errors.As(err, &insightErr):
		code, details, base = insightErr.Code, insightErr.Details, insightErr.Err
	case errors.As(err, &campaignErr):
		code, details, base = campaignErr.Code, campaignErr.Details, campaignErr.Err
	case errors.As(err, &profileErr):
		code, details, base = profileErr.Code, profileErr.Details, profileErr.Err
	case errors.As(err, &analysisErr):
		code, details, base = analysisErr.Code, analysisErr.Details, analysisErr.Err
	case errors.As(err, &scrapeErr):
		code, details, base = scrapeErr.Code, scrapeErr.Details, scrapeErr.Err
	}

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if code == apiErrors.ErrInternalServer || code == apiErrors.ErrDatabaseOperation || code == apiErrors.ErrExternalService {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	if base != nil {
		message = base.Error()
	}

	var body any
	if details != "" && !strings.HasPrefix(code, "SRV_") {
		body = details
	}
	apiErrors.WriteError(w, code, message, body)
}

// claimsOrAbort obtém as claims do contexto e escreve 401 quando ausentes
func claimsOrAbort(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}
