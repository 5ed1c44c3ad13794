package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/infrastructure/cache"
	repomocks "github.com/vfg2006/brand-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service *Service
	repo    *repomocks.MockRawAdInsightRepository
	fetcher *mocks.MockAdInsightFetcher
	redis   *miniredis.Miniredis
	store   *cache.RedisStore
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	store := &cache.RedisStore{Client: redis.NewClient(&redis.Options{Addr: s.Addr()})}
	repo := repomocks.NewMockRawAdInsightRepository(ctrl)
	fetcher := mocks.NewMockAdInsightFetcher(ctrl)

	cfg := &config.Config{ReportLocation: time.UTC}
	service := NewService(cfg, repo, fetcher, NewViewCache(store, time.Hour, nil), nil)
	service.now = func() time.Time { return time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC) }

	return &serviceFixture{
		service: service,
		repo:    repo,
		fetcher: fetcher,
		redis:   s,
		store:   store,
	}
}

func TestService_GetAdInsightsView(t *testing.T) {
	ctx := context.Background()
	synced := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   domain.PeriodType
		custom   *domain.CustomRange
		setup    func(f *serviceFixture)
		validate func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error)
	}{
		{
			name:   "Período personalizado calcula a visão a partir do banco",
			period: domain.PeriodCustom,
			custom: &domain.CustomRange{Start: date(2024, 1, 1), End: date(2024, 1, 2)},
			setup: func(f *serviceFixture) {
				rows := scenarioRows()
				rows[1].LastSyncedAt = &synced
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", date(2023, 12, 30), date(2024, 1, 3)).
					Return(rows, nil)
				f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", time.UTC).Return(nil, nil)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Len(t, view.Daily, 2)
				assert.Len(t, view.Hierarchy, 1)
				assert.Equal(t, int64(15), view.Performance.Clicks)
				assert.Zero(t, view.Performance.ClicksGrowth, "sem período anterior o crescimento é zero")
				require.NotNil(t, view.ServerSyncTime)
				assert.True(t, synced.Equal(*view.ServerSyncTime))
			},
		},
		{
			name:   "Segunda chamada com a mesma versão vem do cache",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", date(2024, 1, 1), date(2024, 1, 3)).
					Return(scenarioRows(), nil).
					Times(1)
				f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil).Times(1)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)

				cached, err := f.service.GetAdInsightsView(context.Background(), "member-1", domain.PeriodDaily, nil)
				require.NoError(t, err)
				assert.Equal(t, view.Performance.Clicks, cached.Performance.Clicks)
				assert.Len(t, cached.Daily, 1)
			},
		},
		{
			name:   "Incremento de versão invalida a visão em cache",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(scenarioRows(), nil).
					Times(2)
				f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil).Times(2)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(0), view.DataVersion)

				_, err = f.store.BumpVersion(context.Background(), "member-1")
				require.NoError(t, err)

				fresh, err := f.service.GetAdInsightsView(context.Background(), "member-1", domain.PeriodDaily, nil)
				require.NoError(t, err)
				assert.Equal(t, int64(1), fresh.DataVersion)
			},
		},
		{
			name:   "Cache indisponível não impede o cálculo",
			period: domain.PeriodWeekly,
			setup: func(f *serviceFixture) {
				f.redis.Close()
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(scenarioRows(), nil)
				f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Len(t, view.Daily, 7)
			},
		},
		{
			name:   "Intervalo invertido é rejeitado antes de qualquer consulta",
			period: domain.PeriodCustom,
			custom: &domain.CustomRange{Start: date(2024, 2, 10), End: date(2024, 2, 1)},
			setup:  func(f *serviceFixture) {},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				assert.Nil(t, view)
				require.Error(t, err)
				var insightErr *InsightError
				require.True(t, errors.As(err, &insightErr))
				assert.Equal(t, apiErrors.ErrInvalidPeriod, insightErr.Code)
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
		{
			name:   "Membro sem dados faz a carga inicial no backend dash",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				gomock.InOrder(
					f.repo.EXPECT().GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).Return(nil, nil),
					f.repo.EXPECT().CountByMember(gomock.Any(), "member-1").Return(0, nil),
					f.fetcher.EXPECT().
						FetchRawAdInsights(gomock.Any(), "member-1", date(2023, 12, 31), date(2024, 1, 2)).
						Return(scenarioRows(), nil),
					f.repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(3)).Return(nil),
					f.repo.EXPECT().GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).Return(scenarioRows(), nil),
					f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil),
				)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), view.DataVersion)
				assert.Equal(t, int64(5), view.Performance.Clicks)
			},
		},
		{
			name:   "Falha do backend dash na carga inicial retorna visão vazia",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().CountByMember(gomock.Any(), "member-1").Return(0, nil)
				f.fetcher.EXPECT().
					FetchRawAdInsights(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
				f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Empty(t, view.Hierarchy)
				assert.Len(t, view.Daily, 1)
			},
		},
		{
			name:   "Carga inicial semanal busca a janela inteira",
			period: domain.PeriodWeekly,
			setup: func(f *serviceFixture) {
				gomock.InOrder(
					f.repo.EXPECT().GetByDateRange(gomock.Any(), "member-1", date(2023, 12, 20), date(2024, 1, 3)).Return(nil, nil),
					f.repo.EXPECT().CountByMember(gomock.Any(), "member-1").Return(0, nil),
					f.fetcher.EXPECT().
						FetchRawAdInsights(gomock.Any(), "member-1", date(2023, 12, 20), date(2024, 1, 2)).
						Return(scenarioRows(), nil),
					f.repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(3)).Return(nil),
					f.repo.EXPECT().GetByDateRange(gomock.Any(), "member-1", date(2023, 12, 20), date(2024, 1, 3)).Return(scenarioRows(), nil),
					f.repo.EXPECT().ListEntities(gomock.Any(), "member-1", gomock.Any()).Return(nil, nil),
				)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				assert.Len(t, view.Daily, 7)
				assert.Equal(t, int64(15), view.Performance.Clicks)
			},
		},
		{
			name:   "Campanha sem linhas na janela aparece como encerrada",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				old := row("OLD", "S9", "Z", date(2023, 12, 20), 80, 8, 800)
				old.PlatformStatus = domain.AdStatusPaused
				current := row("C1", "S1", "A", date(2024, 1, 2), 50, 5, 500)

				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", date(2024, 1, 1), date(2024, 1, 3)).
					Return([]domain.RawAdInsight{current}, nil)
				f.repo.EXPECT().
					ListEntities(gomock.Any(), "member-1", time.UTC).
					Return([]domain.RawAdInsight{old.WithoutMetrics(), current.WithoutMetrics()}, nil)
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				require.NoError(t, err)
				require.Len(t, view.Hierarchy, 2)

				ended := FilterByStatus(view.Hierarchy, StatusFilterEnded)
				require.Len(t, ended, 1)
				assert.Equal(t, "OLD", ended[0].ID)
				assert.Equal(t, "Campanha OLD", ended[0].Name)
				assert.Equal(t, domain.AdStatusPaused, ended[0].PlatformStatus)
				assert.True(t, ended[0].Spend.IsZero())
				assert.Zero(t, ended[0].Clicks)
				require.Len(t, ended[0].Children, 1)
				assert.Equal(t, domain.DeliveryEnded, ended[0].Children[0].Status)

				active := FilterByStatus(view.Hierarchy, StatusFilterActive)
				require.Len(t, active, 1)
				assert.Equal(t, "C1", active[0].ID)
				assert.Equal(t, int64(5), active[0].Clicks, "a linha de entidade não soma métricas")

				assert.Equal(t, int64(5), view.Performance.Clicks)
				assert.Len(t, view.Daily, 1)
			},
		},
		{
			name:   "Erro ao listar entidades é propagado",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(scenarioRows(), nil)
				f.repo.EXPECT().
					ListEntities(gomock.Any(), "member-1", gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				assert.Nil(t, view)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
		{
			name:   "Erro de banco é propagado",
			period: domain.PeriodDaily,
			setup: func(f *serviceFixture) {
				f.repo.EXPECT().
					GetByDateRange(gomock.Any(), "member-1", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, f *serviceFixture, view *domain.AdInsightsView, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setup(f)

			view, err := f.service.GetAdInsightsView(ctx, "member-1", tt.period, tt.custom)

			tt.validate(t, f, view, err)
		})
	}
}

func TestService_RefreshMember(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.fetcher.EXPECT().
		FetchRawAdInsights(gomock.Any(), "member-1", date(2023, 12, 31), date(2024, 1, 2)).
		Return(scenarioRows(), nil)
	f.repo.EXPECT().
		UpsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.RawAdInsight) error {
			for _, r := range rows {
				assert.Equal(t, "member-1", r.DashMemberID)
			}
			return nil
		})

	result, err := f.service.RefreshMember(ctx, "member-1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, int64(1), result.DataVersion)

	version, err := f.store.Version(ctx, "member-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestService_SyncMemberRejectsInvertedRange(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.SyncMember(context.Background(), "member-1", date(2024, 1, 5), date(2024, 1, 1))

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
