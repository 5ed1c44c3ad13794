package handler

import (
	"net/http"

	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

// Analyze gera a análise narrativa. Falhas do modelo já chegam aqui como fallback.
func Analyze(service analyzing.AnalysisService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		analysis, err := service.Analyze(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar análise")
			return
		}
		writeJSON(w, r, http.StatusOK, analysis)
	})
}
