package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

// Instrument registra contadores e latência da rota. O endpoint é o padrão da rota
// (ex.: /v1/scrape-jobs/:id) para não explodir a cardinalidade.
func Instrument(m *metrics.Metrics, endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.IncHTTPRequestsInFlight()
			defer m.DecHTTPRequestsInFlight()

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(lrw.statusCode), time.Since(start))
		})
	}
}
