package analyzing

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	sourceLLM      = "llm"
	sourceFallback = "fallback"
)

type Service struct {
	completer Completer
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewService(completer Completer, m *metrics.Metrics) AnalysisService {
	return &Service{
		completer: completer,
		metrics:   m,
		now:       time.Now,
	}
}

// Analyze valida a requisição e consulta o modelo. Qualquer falha depois da
// validação resulta na análise de fallback, nunca em erro.
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error) {
	if req.Type == "" {
		req.Type = domain.AnalysisCampaign
	}

	if err := Validate(req); err != nil {
		return nil, err
	}

	logger := logrus.WithField("analysis_type", req.Type)

	systemPrompt, userPrompt := BuildPrompt(req)

	analysis, err := s.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		logger.WithError(err).Warn("Análise por IA indisponível, usando fallback")
		analysis = Fallback(req)
		s.metrics.RecordAnalysis(string(req.Type), sourceFallback)
	} else {
		s.metrics.RecordAnalysis(string(req.Type), sourceLLM)
	}

	analysis.GeneratedAt = s.now().UTC()

	return analysis, nil
}

func (s *Service) complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.Analysis, error) {
	reply, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	return ParseReply(reply)
}

func Validate(req domain.AnalysisRequest) error {
	switch req.Type {
	case domain.AnalysisCampaign:
		if len(req.Contents) == 0 {
			return NewAnalysisError(ErrMissingContents, apiErrors.ErrMissingRequiredData, "")
		}
	case domain.AnalysisProfile:
		if req.ProfileData == nil {
			return NewAnalysisError(ErrMissingProfileData, apiErrors.ErrMissingRequiredData, "")
		}
	case domain.AnalysisAds:
		if req.AdData == nil {
			return NewAnalysisError(ErrMissingAdData, apiErrors.ErrMissingRequiredData, "")
		}
	default:
		return NewAnalysisError(ErrInvalidAnalysisType, apiErrors.ErrInvalidRequest, string(req.Type))
	}
	return nil
}
