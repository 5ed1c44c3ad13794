package campaigning

import (
	"context"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// ContentSource é a base de conteúdo das campanhas (Notion)
type ContentSource interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListInfluencers(ctx context.Context) ([]domain.Influencer, error)
	ListMentions(ctx context.Context, campaignID string) ([]domain.Mention, error)
	ListApplicants(ctx context.Context, loginID string) ([]domain.Applicant, error)
}

type CampaignService interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListInfluencers(ctx context.Context) ([]domain.Influencer, error)
	ListApplicants(ctx context.Context, loginID string) ([]domain.Applicant, error)
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
