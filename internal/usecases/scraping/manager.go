package scraping

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
	"github.com/vfg2006/brand-insights-api/pkg/utils"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultMaxAttempts  = 1000

	// jobs encerrados ficam disponíveis para consulta por este tempo
	finishedRetention = time.Hour
)

type job struct {
	mu       sync.Mutex
	snapshot domain.ScrapeJob
	cancel   context.CancelFunc
}

// finish move o job para um estado terminal. Retorna false se ele já havia terminado.
func (j *job) finish(state domain.ScrapeJobState, message string, posts []domain.ScrapedPost, at time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.snapshot.State.IsTerminal() {
		return false
	}

	j.snapshot.State = state
	j.snapshot.Error = message
	j.snapshot.Posts = posts
	j.snapshot.FinishedAt = &at
	return true
}

func (j *job) attempt() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.snapshot.Attempts++
	return j.snapshot.Attempts
}

func (j *job) copy() *domain.ScrapeJob {
	j.mu.Lock()
	defer j.mu.Unlock()

	snapshot := j.snapshot
	if j.snapshot.Posts != nil {
		snapshot.Posts = append([]domain.ScrapedPost(nil), j.snapshot.Posts...)
	}
	if j.snapshot.FinishedAt != nil {
		finishedAt := *j.snapshot.FinishedAt
		snapshot.FinishedAt = &finishedAt
	}
	return &snapshot
}

// Manager acompanha jobs do serviço de scraping, consultando o status em intervalo fixo
// com uma única requisição em andamento por job.
type Manager struct {
	source      StatusSource
	sink        ResultSink
	metrics     *metrics.Metrics
	interval    time.Duration
	maxAttempts int
	location    *time.Location
	now         func() time.Time
	newHandle   func() (string, error)

	mu   sync.Mutex
	jobs map[string]*job
	wg   sync.WaitGroup
}

func NewManager(cfg *config.Config, source StatusSource, sink ResultSink, m *metrics.Metrics) *Manager {
	interval := cfg.Scraper.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	maxAttempts := cfg.Scraper.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	location := cfg.ReportLocation
	if location == nil {
		location = time.UTC
	}

	return &Manager{
		source:      source,
		sink:        sink,
		metrics:     m,
		interval:    interval,
		maxAttempts: maxAttempts,
		location:    location,
		now:         time.Now,
		newHandle:   utils.GenerateID,
		jobs:        make(map[string]*job),
	}
}

// Start registra o job e inicia o acompanhamento em segundo plano.
// O acompanhamento não depende do contexto da requisição que o criou.
func (m *Manager) Start(dashMemberID string, req domain.ScrapeJobRequest) (*domain.ScrapeJob, error) {
	if req.JobID == "" {
		return nil, NewScrapeError(ErrJobIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.CampaignID == "" {
		return nil, NewScrapeError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	handle, err := m.newHandle()
	if err != nil {
		return nil, NewScrapeError(ErrGenerateHandle, apiErrors.ErrInternalServer, err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &job{
		snapshot: domain.ScrapeJob{
			Handle:       handle,
			JobID:        req.JobID,
			CampaignID:   req.CampaignID,
			DashMemberID: dashMemberID,
			State:        domain.ScrapeJobPending,
			StartedAt:    m.now(),
		},
		cancel: cancel,
	}

	m.mu.Lock()
	m.pruneLocked()
	m.jobs[handle] = j
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"handle":      handle,
		"job_id":      req.JobID,
		"campaign_id": req.CampaignID,
	}).Info("Iniciando acompanhamento de scraping")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer cancel()
		m.poll(ctx, j)
	}()

	return j.copy(), nil
}

func (m *Manager) Get(handle string) (*domain.ScrapeJob, error) {
	j, err := m.lookup(handle)
	if err != nil {
		return nil, err
	}
	return j.copy(), nil
}

// Cancel interrompe o acompanhamento. Chamadas repetidas retornam o mesmo estado final.
func (m *Manager) Cancel(handle string) (*domain.ScrapeJob, error) {
	j, err := m.lookup(handle)
	if err != nil {
		return nil, err
	}

	if j.finish(domain.ScrapeJobCancelled, "", nil, m.now()) {
		m.metrics.RecordScrapeJob(string(domain.ScrapeJobCancelled))
		logrus.WithField("handle", handle).Info("Acompanhamento de scraping cancelado")
	}
	j.cancel()

	return j.copy(), nil
}

// Shutdown cancela os jobs pendentes e aguarda o fim das goroutines de acompanhamento
func (m *Manager) Shutdown() {
	m.mu.Lock()
	handles := make([]string, 0, len(m.jobs))
	for handle := range m.jobs {
		handles = append(handles, handle)
	}
	m.mu.Unlock()

	for _, handle := range handles {
		_, _ = m.Cancel(handle)
	}

	m.wg.Wait()
}

func (m *Manager) lookup(handle string) (*job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[handle]
	if !ok {
		return nil, NewScrapeError(ErrJobNotFound, apiErrors.ErrNotFound, handle)
	}
	return j, nil
}

func (m *Manager) pruneLocked() {
	cutoff := m.now().Add(-finishedRetention)
	for handle, j := range m.jobs {
		j.mu.Lock()
		expired := j.snapshot.FinishedAt != nil && j.snapshot.FinishedAt.Before(cutoff)
		j.mu.Unlock()
		if expired {
			delete(m.jobs, handle)
		}
	}
}

func (m *Manager) poll(ctx context.Context, j *job) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	snapshot := j.copy()
	logger := logrus.WithFields(logrus.Fields{
		"handle": snapshot.Handle,
		"job_id": snapshot.JobID,
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		attempt := j.attempt()

		status, err := m.source.GetJobStatus(ctx, snapshot.JobID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logger.WithError(err).Warn("Erro ao consultar status do scraping")
			m.end(j, domain.ScrapeJobFailed, err.Error(), nil)
			return
		}

		switch status.Status {
		case domain.RemoteJobCompleted:
			day := m.now().In(m.location)
			if err := m.sink.SendCampaignResults(ctx, snapshot.DashMemberID, snapshot.CampaignID, status.Result, day); err != nil {
				m.end(j, domain.ScrapeJobFailed, err.Error(), nil)
				return
			}
			logger.WithField("posts", len(status.Result)).Info("Scraping concluído e resultados enviados")
			m.end(j, domain.ScrapeJobSucceeded, "", status.Result)
			return

		case domain.RemoteJobError:
			message := msgRemoteError
			if status.Error != nil && *status.Error != "" {
				message = *status.Error
			}
			m.end(j, domain.ScrapeJobFailed, message, nil)
			return
		}

		if attempt >= m.maxAttempts {
			logger.WithField("attempts", attempt).Warn("Scraping excedeu o número máximo de consultas")
			m.end(j, domain.ScrapeJobTimedOut, msgTimeout, nil)
			return
		}
	}
}

func (m *Manager) end(j *job, state domain.ScrapeJobState, message string, posts []domain.ScrapedPost) {
	if j.finish(state, message, posts, m.now()) {
		m.metrics.RecordScrapeJob(string(state))
	}
}
