package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os coletores da aplicação. Um *Metrics nil é válido e não registra nada.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// APIs externas
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec
	ExternalAPIFailures *prometheus.CounterVec

	// Cache de visões
	ViewCacheLookups *prometheus.CounterVec

	// Sincronização e jobs
	SyncRunsTotal    *prometheus.CounterVec
	SyncDuration     *prometheus.HistogramVec
	SyncRowsUpserted *prometheus.CounterVec
	ScrapeJobsTotal  *prometheus.CounterVec
	AnalysisTotal    *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		ExternalAPICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),

		ExternalAPIFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_failures_total",
				Help: "Total number of external API failures",
			},
			[]string{"api", "error_type"},
		),

		ViewCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_cache_lookups_total",
				Help: "Derived view cache lookups by result",
			},
			[]string{"result"},
		),

		SyncRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ad_insight_sync_runs_total",
				Help: "Total number of ad insight sync runs",
			},
			[]string{"status", "trigger"},
		),

		SyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ad_insight_sync_duration_seconds",
				Help:    "Ad insight sync duration in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"trigger"},
		),

		SyncRowsUpserted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ad_insight_rows_upserted_total",
				Help: "Total number of raw ad insight rows upserted",
			},
			[]string{"source"},
		),

		ScrapeJobsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scrape_jobs_total",
				Help: "Scrape jobs by final state",
			},
			[]string{"state"},
		),

		AnalysisTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "narrative_analysis_total",
				Help: "Narrative analyses by type and source",
			},
			[]string{"type", "source"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) IncHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) DecHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Dec()
}

func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

func (m *Metrics) RecordExternalAPIFailure(api, errorType string) {
	if m == nil {
		return
	}
	m.ExternalAPIFailures.WithLabelValues(api, errorType).Inc()
}

// RecordViewCache registra "hit", "miss" ou "error"
func (m *Metrics) RecordViewCache(result string) {
	if m == nil {
		return
	}
	m.ViewCacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordSyncRun(status, trigger string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SyncRunsTotal.WithLabelValues(status, trigger).Inc()
	m.SyncDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}

func (m *Metrics) RecordRowsUpserted(source string, count int) {
	if m == nil {
		return
	}
	m.SyncRowsUpserted.WithLabelValues(source).Add(float64(count))
}

func (m *Metrics) RecordScrapeJob(state string) {
	if m == nil {
		return
	}
	m.ScrapeJobsTotal.WithLabelValues(state).Inc()
}

func (m *Metrics) RecordAnalysis(analysisType, source string) {
	if m == nil {
		return
	}
	m.AnalysisTotal.WithLabelValues(analysisType, source).Inc()
}
