package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/log"
)

// StartScrapeJobRequest segue o formato enviado pelo painel
type StartScrapeJobRequest struct {
	JobID      string `json:"jobId"`
	CampaignID string `json:"campaignId"`
}

// StartScrapeJob inicia o acompanhamento do job e responde 202 com o handle
func StartScrapeJob(service scraping.ScrapeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		var req StartScrapeJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		job, err := service.Start(claims.DashMemberID, domain.ScrapeJobRequest{
			JobID:      req.JobID,
			CampaignID: req.CampaignID,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao iniciar job de scraping")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"handle":      job.Handle,
			"job_id":      job.JobID,
			"campaign_id": job.CampaignID,
		}).Info("scraping: acompanhamento iniciado")

		writeJSON(w, r, http.StatusAccepted, job)
	})
}

func GetScrapeJob(service scraping.ScrapeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job, ok := ownedScrapeJob(w, r, service)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, job)
	})
}

func CancelScrapeJob(service scraping.ScrapeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owned, ok := ownedScrapeJob(w, r, service)
		if !ok {
			return
		}

		job, err := service.Cancel(owned.Handle)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cancelar job de scraping")
			return
		}
		writeJSON(w, r, http.StatusOK, job)
	})
}

// ownedScrapeJob busca o job do handle da rota. Jobs de outro membro respondem 404, exceto para admin.
func ownedScrapeJob(w http.ResponseWriter, r *http.Request, service scraping.ScrapeService) (*domain.ScrapeJob, bool) {
	claims, ok := claimsOrAbort(w, r)
	if !ok {
		return nil, false
	}

	handle := httprouter.ParamsFromContext(r.Context()).ByName("id")
	job, err := service.Get(handle)
	if err != nil {
		writeServiceError(w, r, err, "Erro ao consultar job de scraping")
		return nil, false
	}

	if job.DashMemberID != claims.DashMemberID && !claims.IsAdmin() {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, scraping.ErrJobNotFound.Error(), handle)
		return nil, false
	}
	return job, true
}
