package scraper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

func TestScraperClient_GetJobStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, status *domain.ScrapeJobStatus, err error)
	}{
		{
			name:   "Job concluído com posts",
			status: http.StatusOK,
			body:   `{"status": "completed", "result": [{"postId": "p1", "postUrl": "https://instagram.com/p/1", "likesCount": 12}]}`,
			validate: func(t *testing.T, status *domain.ScrapeJobStatus, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RemoteJobCompleted, status.Status)
				require.Len(t, status.Result, 1)
				assert.Equal(t, int64(12), status.Result[0].LikesCount)
				assert.Nil(t, status.Error)
			},
		},
		{
			name:   "Job com erro",
			status: http.StatusOK,
			body:   `{"status": "error", "error": "perfil privado"}`,
			validate: func(t *testing.T, status *domain.ScrapeJobStatus, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.RemoteJobError, status.Status)
				require.NotNil(t, status.Error)
				assert.Equal(t, "perfil privado", *status.Error)
			},
		},
		{
			name:   "Status HTTP inesperado",
			status: http.StatusInternalServerError,
			body:   `oops`,
			validate: func(t *testing.T, status *domain.ScrapeJobStatus, err error) {
				assert.Nil(t, status)
				assert.Error(t, err)
			},
		},
		{
			name:   "Corpo inválido",
			status: http.StatusOK,
			body:   `{`,
			validate: func(t *testing.T, status *domain.ScrapeJobStatus, err error) {
				assert.Nil(t, status)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/status/mension/job-1", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(&config.Config{Scraper: config.Scraper{URL: server.URL}}, nil)

			status, err := client.GetJobStatus(context.Background(), "job-1")

			tt.validate(t, status, err)
		})
	}
}
