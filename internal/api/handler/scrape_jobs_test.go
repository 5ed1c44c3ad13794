package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping"
	"github.com/vfg2006/brand-insights-api/internal/usecases/scraping/mocks"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestStartScrapeJob(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockScrapeService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "inicia o acompanhamento com o membro logado",
			body: `{"jobId":"job-9","campaignId":"camp-1"}`,
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().
					Start("member-1", domain.ScrapeJobRequest{JobID: "job-9", CampaignID: "camp-1"}).
					Return(&domain.ScrapeJob{Handle: "abc123", JobID: "job-9", CampaignID: "camp-1", State: domain.ScrapeJobPending}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "corpo inválido",
			body:       `{"jobId":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "job sem id",
			body: `{"campaignId":"camp-1"}`,
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().
					Start("member-1", domain.ScrapeJobRequest{CampaignID: "camp-1"}).
					Return(nil, scraping.NewScrapeError(scraping.ErrJobIDRequired, apiErrors.ErrMissingRequiredData, ""))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockScrapeService(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			rec := serve(ScrapeJobs(service), memberClaims, http.MethodPost, "/v1/scrape-jobs", tt.body)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}

			var job domain.ScrapeJob
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
			assert.Equal(t, "abc123", job.Handle)
			assert.Equal(t, domain.ScrapeJobPending, job.State)
		})
	}
}

func TestGetScrapeJob(t *testing.T) {
	own := &domain.ScrapeJob{Handle: "h1", DashMemberID: "member-1", State: domain.ScrapeJobSucceeded}
	other := &domain.ScrapeJob{Handle: "h2", DashMemberID: "member-2", State: domain.ScrapeJobPending}

	tests := []struct {
		name       string
		claims     *domain.Claims
		handle     string
		setup      func(m *mocks.MockScrapeService)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "retorna o job do próprio membro",
			claims: memberClaims,
			handle: "h1",
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().Get("h1").Return(own, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "job de outro membro responde 404",
			claims: memberClaims,
			handle: "h2",
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().Get("h2").Return(other, nil)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
		{
			name:   "admin enxerga jobs de qualquer membro",
			claims: adminClaims,
			handle: "h2",
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().Get("h2").Return(other, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "handle desconhecido",
			claims: memberClaims,
			handle: "nope",
			setup: func(m *mocks.MockScrapeService) {
				m.EXPECT().Get("nope").Return(nil, scraping.NewScrapeError(scraping.ErrJobNotFound, apiErrors.ErrNotFound, "nope"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockScrapeService(ctrl)
			tt.setup(service)

			rec := serve(ScrapeJobs(service), tt.claims, http.MethodGet, "/v1/scrape-jobs/"+tt.handle, "")

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestCancelScrapeJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockScrapeService(ctrl)

	pending := &domain.ScrapeJob{Handle: "h1", DashMemberID: "member-1", State: domain.ScrapeJobPending}
	cancelled := &domain.ScrapeJob{Handle: "h1", DashMemberID: "member-1", State: domain.ScrapeJobCancelled}

	gomock.InOrder(
		service.EXPECT().Get("h1").Return(pending, nil),
		service.EXPECT().Cancel("h1").Return(cancelled, nil),
	)

	rec := serve(ScrapeJobs(service), memberClaims, http.MethodDelete, "/v1/scrape-jobs/h1", "")

	requireStatus(t, rec, http.StatusOK)
	var job domain.ScrapeJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, domain.ScrapeJobCancelled, job.State)
}
