package campaigning

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/integrator/notion"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/mentioning"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

type Service struct {
	source ContentSource
}

func NewService(source ContentSource) CampaignService {
	return &Service{
		source: source,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.source.ListCampaigns(ctx)
	if err != nil {
		return nil, NewCampaignError(ErrFetchContent, apiErrors.ErrExternalService, err.Error())
	}
	return campaigns, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrCampaignRequired, apiErrors.ErrMissingRequiredData, "")
	}

	campaign, err := s.source.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, notion.ErrNotFound) {
			return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, campaignID)
		}
		return nil, NewCampaignError(ErrFetchContent, apiErrors.ErrExternalService, err.Error())
	}

	return campaign, nil
}

func (s *Service) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	influencers, err := s.source.ListInfluencers(ctx)
	if err != nil {
		return nil, NewCampaignError(ErrFetchContent, apiErrors.ErrExternalService, err.Error())
	}
	return influencers, nil
}

func (s *Service) ListApplicants(ctx context.Context, loginID string) ([]domain.Applicant, error) {
	applicants, err := s.source.ListApplicants(ctx, loginID)
	if err != nil {
		return nil, NewCampaignError(ErrFetchContent, apiErrors.ErrExternalService, err.Error())
	}
	return applicants, nil
}

// GetDashboardStats consulta as três bases em paralelo e soma o desempenho das menções
func (s *Service) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		campaigns   []domain.Campaign
		influencers []domain.Influencer
		mentions    []domain.Mention
		firstErr    error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		result, err := s.source.ListCampaigns(ctx)
		if err != nil {
			setErr(err)
			return
		}
		campaigns = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.source.ListInfluencers(ctx)
		if err != nil {
			setErr(err)
			return
		}
		influencers = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.source.ListMentions(ctx, "")
		if err != nil {
			setErr(err)
			return
		}
		mentions = mentioning.DedupeMentions(result)
	}()
	wg.Wait()

	if firstErr != nil {
		logrus.WithError(firstErr).Error("Erro ao montar estatísticas do painel")
		return nil, NewCampaignError(ErrFetchContent, apiErrors.ErrExternalService, firstErr.Error())
	}

	performance := domain.MentionPerformance{}
	for _, m := range mentions {
		performance = performance.Add(m)
	}

	return &domain.DashboardStats{
		TotalCampaigns:   len(campaigns),
		TotalInfluencers: len(influencers),
		TotalMentions:    len(mentions),
		Performance:      performance,
	}, nil
}
