package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/repository"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

// AdInsightSyncConfig representa a configuração do agendador de insights de anúncios
type AdInsightSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

type syncSummary struct {
	Members int `json:"members"`
	Failed  int `json:"failed"`
	Rows    int `json:"rows"`
	Deleted int `json:"deleted"`
}

// AdInsightSyncService gerencia o agendamento e execução da sincronização de insights de anúncios
type AdInsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdInsightSyncConfig
	memberRepo          repository.DashMemberRepository
	rawRepo             repository.RawAdInsightRepository
	insighter           insighting.Insighter
	metrics             *metrics.Metrics
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         syncSummary
}

// NewAdInsightSyncService cria uma nova instância do serviço de sincronização de insights de anúncios
func NewAdInsightSyncService(
	memberRepo repository.DashMemberRepository,
	rawRepo repository.RawAdInsightRepository,
	insighter insighting.Insighter,
	appConfig *config.Config,
	m *metrics.Metrics,
) *AdInsightSyncService {
	syncConfig := AdInsightSyncConfig{
		CronSchedule:      appConfig.AdInsightSync.CronSchedule,
		LookbackDays:      max(appConfig.AdInsightSync.LookbackDays, 1),
		MaxConcurrentJobs: max(appConfig.AdInsightSync.MaxConcurrentJobs, 1),
		RetentionDays:     appConfig.AdInsightSync.RetentionDays,
		SyncEnabled:       appConfig.AdInsightSync.Enabled,
	}

	location := appConfig.ReportLocation
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"retention_days":      syncConfig.RetentionDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights de anúncios carregada")

	return &AdInsightSyncService{
		scheduler:  gocron.NewScheduler(location),
		config:     syncConfig,
		memberRepo: memberRepo,
		rawRepo:    rawRepo,
		insighter:  insighter,
		metrics:    m,
		location:   location,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *AdInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSync(ctx, TriggerCron)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync sincroniza todos os membros ativos. Execuções concorrentes são ignoradas.
// Retorna false quando outra execução já estava em andamento.
func (s *AdInsightSyncService) RunSync(ctx context.Context, trigger string) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("trigger", trigger).Info("Sincronização de insights de anúncios já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("trigger", trigger).Info("Iniciando sincronização de insights de anúncios para todos os membros ativos")

	members, err := s.memberRepo.ListMembers(ctx, []domain.DashMemberStatus{domain.DashMemberStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar membros para sincronização de insights de anúncios")
		s.metrics.RecordSyncRun("error", trigger, time.Since(startTime))
		return true
	}

	from, to := s.window()
	logrus.WithFields(logrus.Fields{
		"members":    len(members),
		"start_date": from.Format(time.DateOnly),
		"end_date":   to.Format(time.DateOnly),
	}).Info("Período para sincronização de insights de anúncios")

	summary := s.syncMembers(ctx, members, from, to)
	summary.Deleted = s.applyRetention(ctx)

	status := "success"
	if summary.Failed > 0 {
		status = "partial"
	}
	if len(members) > 0 && summary.Failed == len(members) {
		status = "error"
	}

	duration := time.Since(startTime)
	s.metrics.RecordSyncRun(status, trigger, duration)

	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"members":  summary.Members,
		"failed":   summary.Failed,
		"rows":     summary.Rows,
		"deleted":  summary.Deleted,
	}).Info("Sincronização de insights de anúncios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	return true
}

// window retorna o intervalo inclusivo de LookbackDays dias terminando ontem
func (s *AdInsightSyncService) window() (time.Time, time.Time) {
	today := domain.TruncateDay(s.now(), s.location)
	return today.AddDate(0, 0, -s.config.LookbackDays), today.AddDate(0, 0, -1)
}

func (s *AdInsightSyncService) syncMembers(ctx context.Context, members []*domain.DashMember, from, to time.Time) syncSummary {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		summary syncSummary
	)

	for _, member := range members {
		if member == nil || member.ID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(m *domain.DashMember) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result, err := s.insighter.SyncMember(ctx, m.ID, from, to)

			mu.Lock()
			defer mu.Unlock()
			summary.Members++

			if err != nil {
				summary.Failed++
				logrus.WithFields(logrus.Fields{
					"dash_member_id": m.ID,
					"login_id":       m.LoginID,
					"error":          err.Error(),
				}).Error("Erro ao sincronizar insights de anúncios do membro")
				return
			}
			summary.Rows += result.Rows
		}(member)
	}

	wg.Wait()
	return summary
}

func (s *AdInsightSyncService) applyRetention(ctx context.Context) int {
	if s.config.RetentionDays <= 0 {
		return 0
	}

	deleted, err := s.rawRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover insights brutos antigos")
		return 0
	}
	return int(deleted)
}

// TriggerManualSync inicia manualmente uma sincronização de insights de anúncios
func (s *AdInsightSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights de anúncios já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights de anúncios")
	go s.RunSync(context.Background(), TriggerManual)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AdInsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
