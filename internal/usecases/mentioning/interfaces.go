package mentioning

import (
	"context"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

type MentionSource interface {
	ListMentions(ctx context.Context, campaignID string) ([]domain.Mention, error)
}

type MentionService interface {
	ListMentions(ctx context.Context, campaignID string) ([]domain.Mention, error)
}
