package handler

import (
	"net/http"

	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/log"
	"github.com/vfg2006/brand-insights-api/pkg/utils"
)

// GetAdInsights retorna a visão da aba de anúncios do membro logado.
// Query: period (daily|weekly|monthly|custom), start_date, end_date e status (all|active|ended).
func GetAdInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		periodType, err := domain.ParsePeriodType(query.Get("period"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		custom, err := parseCustomRange(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": query.Get("start_date"),
				"end_date":   query.Get("end_date"),
				"error":      err.Error(),
			}).Warn("insights: datas inválidas")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem seguir o formato AAAA-MM-DD", nil)
			return
		}

		view, err := service.GetAdInsightsView(r.Context(), claims.DashMemberID, periodType, custom)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter insights de anúncios")
			return
		}

		if status := query.Get("status"); status != "" && status != insighting.StatusFilterAll {
			filtered := *view
			filtered.Hierarchy = insighting.FilterByStatus(view.Hierarchy, status)
			view = &filtered
		}

		logger.WithFields(log.Fields{
			"user_dash_member_id": claims.DashMemberID,
			"period":              periodType,
			"campaigns":           len(view.Hierarchy),
		}).Debug("insights: visão de anúncios retornada")

		writeJSON(w, r, http.StatusOK, view)
	})
}

// RefreshAdInsights busca novamente os últimos dias no backend dash e invalida o cache
func RefreshAdInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		result, err := service.RefreshMember(r.Context(), claims.DashMemberID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar insights de anúncios")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func parseCustomRange(start, end string) (*domain.CustomRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}

	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, err
	}

	return &domain.CustomRange{Start: *startDate, End: *endDate}, nil
}
