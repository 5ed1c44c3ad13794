package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// AdInsightFetcher busca as linhas brutas no backend dash. O intervalo [start, end] é inclusivo.
type AdInsightFetcher interface {
	FetchRawAdInsights(ctx context.Context, dashMemberID string, start, end time.Time) ([]domain.RawAdInsight, error)
}

// ViewStore é o armazenamento chave/valor das visões e do contador de versão por membro
type ViewStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Version(ctx context.Context, dashMemberID string) (int64, error)
	BumpVersion(ctx context.Context, dashMemberID string) (int64, error)
}

// Insighter define os casos de uso da aba de anúncios
type Insighter interface {
	// GetAdInsightsView retorna a visão completa do período, usando o cache quando possível
	GetAdInsightsView(ctx context.Context, dashMemberID string, periodType domain.PeriodType, custom *domain.CustomRange) (*domain.AdInsightsView, error)

	// RefreshMember busca novamente os últimos dias no backend dash e invalida as visões
	RefreshMember(ctx context.Context, dashMemberID string) (*domain.RefreshResult, error)

	// SyncMember busca e grava o intervalo inclusivo [from, to]
	SyncMember(ctx context.Context, dashMemberID string, from, to time.Time) (*domain.RefreshResult, error)
}
