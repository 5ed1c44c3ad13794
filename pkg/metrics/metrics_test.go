package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordExternalAPICall(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordExternalAPICall("dash", "success", 120*time.Millisecond)
	m.RecordExternalAPICall("dash", "success", 80*time.Millisecond)
	m.RecordExternalAPIFailure("notion", "timeout")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExternalAPICalls.WithLabelValues("dash", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPIFailures.WithLabelValues("notion", "timeout")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/healthcheck", "200", time.Millisecond)
		m.RecordViewCache("hit")
		m.RecordScrapeJob("succeeded")
		m.RecordSyncRun("success", "cron", time.Second)
	})
}
