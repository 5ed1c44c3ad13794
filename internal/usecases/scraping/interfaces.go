package scraping

import (
	"context"
	"time"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

type StatusSource interface {
	GetJobStatus(ctx context.Context, jobID string) (*domain.ScrapeJobStatus, error)
}

type ResultSink interface {
	SendCampaignResults(ctx context.Context, dashMemberID, campaignID string, posts []domain.ScrapedPost, day time.Time) error
}

type ScrapeService interface {
	Start(dashMemberID string, req domain.ScrapeJobRequest) (*domain.ScrapeJob, error)
	Get(handle string) (*domain.ScrapeJob, error)
	Cancel(handle string) (*domain.ScrapeJob, error)
	Shutdown()
}
