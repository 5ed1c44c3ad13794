package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brand-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/brand-insights-api/internal/usecases/mentioning"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}
		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanha")
			return
		}
		writeJSON(w, r, http.StatusOK, campaign)
	})
}

func ListInfluencers(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		influencers, err := service.ListInfluencers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar influenciadores")
			return
		}
		writeJSON(w, r, http.StatusOK, influencers)
	})
}

// ListApplicants usa o login do membro para escolher a base de inscritos
func ListApplicants(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		applicants, err := service.ListApplicants(r.Context(), claims.LoginID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar inscritos")
			return
		}
		writeJSON(w, r, http.StatusOK, applicants)
	})
}

func GetDashboard(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetDashboardStats(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas do painel")
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	})
}

func ListMentions(service mentioning.MentionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mentions, err := service.ListMentions(r.Context(), r.URL.Query().Get("campaign_id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar menções")
			return
		}
		writeJSON(w, r, http.StatusOK, mentions)
	})
}
