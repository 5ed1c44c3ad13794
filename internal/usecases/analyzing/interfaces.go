package analyzing

import (
	"context"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type AnalysisService interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error)
}
