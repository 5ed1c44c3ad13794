package insighting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/repository"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

// dias buscados no refresh manual, terminando ontem
const refreshLookbackDays = 3

type Service struct {
	rawRepo  repository.RawAdInsightRepository
	fetcher  AdInsightFetcher
	cache    *ViewCache
	metrics  *metrics.Metrics
	location *time.Location
	now      func() time.Time
}

func NewService(
	cfg *config.Config,
	rawRepo repository.RawAdInsightRepository,
	fetcher AdInsightFetcher,
	cache *ViewCache,
	m *metrics.Metrics,
) *Service {
	location := cfg.ReportLocation
	if location == nil {
		location = time.UTC
	}

	return &Service{
		rawRepo:  rawRepo,
		fetcher:  fetcher,
		cache:    cache,
		metrics:  m,
		location: location,
		now:      time.Now,
	}
}

func (s *Service) GetAdInsightsView(ctx context.Context, dashMemberID string, periodType domain.PeriodType, custom *domain.CustomRange) (*domain.AdInsightsView, error) {
	if dashMemberID == "" {
		return nil, NewInsightError(ErrMemberRequired, apiErrors.ErrMissingRequiredData, "")
	}

	now := s.now().In(s.location)

	window, err := domain.ComputeWindow(periodType, now, custom)
	if err != nil {
		return nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	version, cacheable := s.cache.Version(ctx, dashMemberID)
	key := ViewKey(dashMemberID, version, window, custom)

	if cacheable {
		if view, ok := s.cache.Load(ctx, key); ok {
			logrus.WithFields(logrus.Fields{
				"dash_member_id": dashMemberID,
				"period":         periodType,
				"version":        version,
			}).Debug("Visão de anúncios servida do cache")
			return view, nil
		}
	}

	span := window.Span()
	rows, err := s.rawRepo.GetByDateRange(ctx, dashMemberID, span.Start, span.End)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if len(rows) == 0 {
		bootstrapped, err := s.bootstrap(ctx, dashMemberID, span)
		if err != nil {
			return nil, err
		}
		if bootstrapped != nil {
			version = bootstrapped.DataVersion
			key = ViewKey(dashMemberID, version, window, custom)
			rows, err = s.rawRepo.GetByDateRange(ctx, dashMemberID, span.Start, span.End)
			if err != nil {
				return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
			}
		}
	}

	entities, err := s.rawRepo.ListEntities(ctx, dashMemberID, s.location)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	view := ComputeView(dashMemberID, rows, entities, window, version, now)

	if cacheable {
		s.cache.Save(ctx, key, view)
	}

	return view, nil
}

// bootstrap faz a primeira carga de um membro que ainda não tem nenhuma linha gravada,
// cobrindo toda a janela pedida e nunca menos que o intervalo do refresh manual.
// Retorna nil quando o membro já possui dados ou quando o backend dash falhou.
func (s *Service) bootstrap(ctx context.Context, dashMemberID string, span domain.DateRange) (*domain.RefreshResult, error) {
	count, err := s.rawRepo.CountByMember(ctx, dashMemberID)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if count > 0 {
		return nil, nil
	}

	from, to := s.refreshRange()
	if span.Start.Before(from) {
		from = span.Start
	}

	result, err := s.SyncMember(ctx, dashMemberID, from, to)
	if err != nil {
		var insightErr *InsightError
		if errors.As(err, &insightErr) && errors.Is(insightErr, ErrExternalService) {
			logrus.WithFields(logrus.Fields{
				"dash_member_id": dashMemberID,
				"error":          err,
			}).Warn("Falha na carga inicial do membro, exibindo visão vazia")
			return nil, nil
		}
		return nil, err
	}

	return result, nil
}

func (s *Service) RefreshMember(ctx context.Context, dashMemberID string) (*domain.RefreshResult, error) {
	from, to := s.refreshRange()
	return s.SyncMember(ctx, dashMemberID, from, to)
}

// refreshRange retorna o intervalo inclusivo [hoje-3, ontem]
func (s *Service) refreshRange() (time.Time, time.Time) {
	today := domain.TruncateDay(s.now(), s.location)
	return today.AddDate(0, 0, -refreshLookbackDays), today.AddDate(0, 0, -1)
}

func (s *Service) SyncMember(ctx context.Context, dashMemberID string, from, to time.Time) (*domain.RefreshResult, error) {
	if dashMemberID == "" {
		return nil, NewInsightError(ErrMemberRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if from.After(to) {
		return nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, "início posterior ao fim")
	}

	logger := logrus.WithFields(logrus.Fields{
		"dash_member_id": dashMemberID,
		"from":           from.Format(time.DateOnly),
		"to":             to.Format(time.DateOnly),
	})

	rows, err := s.fetcher.FetchRawAdInsights(ctx, dashMemberID, from, to)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar insights no backend dash")
		return nil, NewInsightError(ErrExternalService, apiErrors.ErrExternalService, err.Error())
	}

	for i := range rows {
		rows[i].DashMemberID = dashMemberID
	}

	if err := s.rawRepo.UpsertBatch(ctx, rows); err != nil {
		logger.WithError(err).Error("Erro ao gravar insights brutos")
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.metrics.RecordRowsUpserted("dash", len(rows))
	version := s.cache.Bump(ctx, dashMemberID)

	logger.WithFields(logrus.Fields{
		"rows":    len(rows),
		"version": version,
	}).Info("Insights brutos sincronizados")

	return &domain.RefreshResult{
		DashMemberID: dashMemberID,
		Rows:         len(rows),
		DataVersion:  version,
		From:         from,
		To:           to,
	}, nil
}
