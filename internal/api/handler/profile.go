package handler

import (
	"net/http"

	"github.com/vfg2006/brand-insights-api/internal/usecases/profiling"
)

func GetProfileInsights(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		view, err := service.GetProfileView(r.Context(), claims.DashMemberID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter insights do perfil")
			return
		}
		writeJSON(w, r, http.StatusOK, view)
	})
}
