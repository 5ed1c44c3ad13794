package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

type fakeRunner struct {
	triggered int
	accept    bool
}

func (f *fakeRunner) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeRunner) GetStatus() map[string]any {
	return map[string]any{"running": !f.accept, "enabled": true}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		accept        bool
		wantStatus    int
		wantCode      string
		wantTriggered int
	}{
		{name: "admin dispara a sincronização de anúncios", cronType: "ad-insights", accept: true, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "all dispara todos os agendadores", cronType: "all", accept: true, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "tipo desconhecido", cronType: "monthly", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{accept: tt.accept}
			services := CronJobServices{AdInsightSync: runner}

			rec := serve(CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "")

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
			assert.Equal(t, tt.wantTriggered, runner.triggered)
		})
	}

	t.Run("membro comum não pode disparar", func(t *testing.T) {
		runner := &fakeRunner{accept: true}

		rec := serve(CronJobs(CronJobServices{AdInsightSync: runner}), memberClaims, http.MethodPost, "/v1/cron/ad-insights/run", "")

		requireStatus(t, rec, http.StatusForbidden)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
		assert.Zero(t, runner.triggered)
	})
}

func TestGetCronStatus(t *testing.T) {
	runner := &fakeRunner{accept: true}

	rec := serve(CronJobs(CronJobServices{AdInsightSync: runner}), adminClaims, http.MethodGet, "/v1/cron/status", "")

	requireStatus(t, rec, http.StatusOK)
	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Contains(t, status, "ad-insights")
	assert.Equal(t, true, status["ad-insights"]["enabled"])
}
