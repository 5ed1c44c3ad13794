package mentioning

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

var ErrFetchMentions = errors.New("erro ao buscar menções")

type Service struct {
	source MentionSource
}

func NewService(source MentionSource) MentionService {
	return &Service{
		source: source,
	}
}

func (s *Service) ListMentions(ctx context.Context, campaignID string) ([]domain.Mention, error) {
	records, err := s.source.ListMentions(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchMentions, err)
	}

	mentions := DedupeMentions(records)

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"total":       len(records),
		"deduped":     len(mentions),
	}).Debug("Menções carregadas")

	return mentions, nil
}
