package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repoMocks "github.com/vfg2006/brand-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	insightMocks "github.com/vfg2006/brand-insights-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	service    *AdInsightSyncService
	memberRepo *repoMocks.MockDashMemberRepository
	rawRepo    *repoMocks.MockRawAdInsightRepository
	insighter  *insightMocks.MockInsighter
}

func newSyncFixture(t *testing.T, retentionDays int) syncFixture {
	ctrl := gomock.NewController(t)
	memberRepo := repoMocks.NewMockDashMemberRepository(ctrl)
	rawRepo := repoMocks.NewMockRawAdInsightRepository(ctrl)
	insighter := insightMocks.NewMockInsighter(ctrl)

	service := NewAdInsightSyncService(memberRepo, rawRepo, insighter, &config.Config{
		AdInsightSync: config.AdInsightSync{
			CronSchedule:      "0 3 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 2,
			RetentionDays:     retentionDays,
		},
		ReportLocation: time.UTC,
	}, nil)
	service.now = func() time.Time { return time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC) }

	return syncFixture{service: service, memberRepo: memberRepo, rawRepo: rawRepo, insighter: insighter}
}

func TestAdInsightSyncService_RunSync(t *testing.T) {
	f := newSyncFixture(t, 400)

	from := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	f.memberRepo.EXPECT().
		ListMembers(gomock.Any(), []domain.DashMemberStatus{domain.DashMemberStatusActive}).
		Return([]*domain.DashMember{{ID: "dm-1"}, {ID: "dm-2"}, {ID: ""}, {ID: "dm-3"}}, nil)

	f.insighter.EXPECT().SyncMember(gomock.Any(), "dm-1", from, to).Return(&domain.RefreshResult{Rows: 10}, nil)
	f.insighter.EXPECT().SyncMember(gomock.Any(), "dm-2", from, to).Return(nil, errors.New("dash fora do ar"))
	f.insighter.EXPECT().SyncMember(gomock.Any(), "dm-3", from, to).Return(&domain.RefreshResult{Rows: 5}, nil)
	f.rawRepo.EXPECT().DeleteOlderThan(gomock.Any(), 400).Return(int64(12), nil)

	started := f.service.RunSync(context.Background(), TriggerManual)

	require.True(t, started)
	status := f.service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, syncSummary{Members: 3, Failed: 1, Rows: 15, Deleted: 12}, status["last_sync_summary"])
}

func TestAdInsightSyncService_RunSyncWithoutRetention(t *testing.T) {
	f := newSyncFixture(t, 0)

	f.memberRepo.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, nil)

	assert.True(t, f.service.RunSync(context.Background(), TriggerCron))
	assert.Equal(t, syncSummary{}, f.service.GetStatus()["last_sync_summary"])
}

func TestAdInsightSyncService_ListMembersError(t *testing.T) {
	f := newSyncFixture(t, 400)

	f.memberRepo.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	assert.True(t, f.service.RunSync(context.Background(), TriggerCron))
	assert.True(t, f.service.GetStatus()["last_sync_completed_at"].(time.Time).IsZero())
}

func TestAdInsightSyncService_SkipsConcurrentRun(t *testing.T) {
	f := newSyncFixture(t, 0)

	release := make(chan struct{})
	entered := make(chan struct{})

	f.memberRepo.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
		Return([]*domain.DashMember{{ID: "dm-1"}}, nil)
	f.insighter.EXPECT().SyncMember(gomock.Any(), "dm-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, time.Time, time.Time) (*domain.RefreshResult, error) {
			close(entered)
			<-release
			return &domain.RefreshResult{Rows: 1}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.service.RunSync(context.Background(), TriggerCron)
	}()

	<-entered
	assert.False(t, f.service.RunSync(context.Background(), TriggerManual))
	assert.False(t, f.service.TriggerManualSync())
	assert.Equal(t, true, f.service.GetStatus()["sync_running"])

	close(release)
	wg.Wait()

	assert.Equal(t, false, f.service.GetStatus()["sync_running"])
}

func TestAdInsightSyncService_StartDisabled(t *testing.T) {
	f := newSyncFixture(t, 0)
	assert.NoError(t, f.service.Start(context.Background()))
}
