package profiling

import (
	"context"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// ProfileSource busca os dados de perfil do Instagram sincronizados pelo backend dash
type ProfileSource interface {
	GetMemberInsights(ctx context.Context, dashMemberID string) ([]dashdomain.MemberInsight, error)
	GetFollowers(ctx context.Context, dashMemberID string) ([]dashdomain.Follower, error)
	GetFollowerInsights(ctx context.Context, dashMemberID string) ([]dashdomain.FollowerInsight, error)
	GetMedia(ctx context.Context, dashMemberID string) ([]dashdomain.MediaResponse, error)
}

type ProfileService interface {
	GetProfileView(ctx context.Context, dashMemberID string) (*domain.ProfileView, error)
}
