package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAdInsights = "ad-insights"
	CronJobTypeAll        = "all"
)

// SyncRunner é um agendador que aceita disparo manual
type SyncRunner interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AdInsightSync SyncRunner
}

func (s CronJobServices) runners() map[string]SyncRunner {
	runners := map[string]SyncRunner{}
	if s.AdInsightSync != nil {
		runners[CronJobTypeAdInsights] = s.AdInsightSync
	}
	return runners
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		runners := services.runners()

		var selected map[string]SyncRunner
		if cronType == CronJobTypeAll {
			selected = runners
		} else if runner, ok := runners[cronType]; ok {
			selected = map[string]SyncRunner{cronType: runner}
		} else {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ad-insights, all", nil)
			return
		}

		started := map[string]bool{}
		for name, runner := range selected {
			started[name] = runner.TriggerManualSync()
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, runner := range services.runners() {
			status[name] = runner.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
