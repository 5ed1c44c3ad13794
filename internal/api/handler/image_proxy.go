package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/log"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

const (
	proxyUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	proxyReferer      = "https://www.instagram.com/"
	proxyAccept       = "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8"
	proxyCacheControl = "public, max-age=86400, s-maxage=86400"
	defaultImageType  = "image/jpeg"
)

// ImageProxy repassa imagens do CDN do Instagram, que bloqueia hotlink sem Referer
func ImageProxy(client *http.Client, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		raw := r.URL.Query().Get("url")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL이 필요합니다.", nil)
			return
		}

		target, err := url.Parse(raw)
		if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "URL inválida", nil)
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "URL inválida", nil)
			return
		}
		req.Header.Set("User-Agent", proxyUserAgent)
		req.Header.Set("Referer", proxyReferer)
		req.Header.Set("Accept", proxyAccept)

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			m.RecordExternalAPIFailure("image_proxy", "network")
			logger.WithFields(log.Fields{
				"host":  target.Host,
				"error": err.Error(),
			}).Error("Erro no proxy de imagem")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "이미지 프록시 오류", nil)
			return
		}
		defer resp.Body.Close()
		m.RecordExternalAPICall("image_proxy", strconv.Itoa(resp.StatusCode), time.Since(start))

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			logger.WithFields(log.Fields{
				"host":        target.Host,
				"status_code": resp.StatusCode,
			}).Warn("Imagem indisponível na origem")
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(resp.StatusCode)
			_, _ = io.WriteString(w, "이미지를 불러올 수 없습니다.")
			return
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = defaultImageType
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", proxyCacheControl)
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, resp.Body); err != nil {
			logger.WithError(err).Warn("Cópia da imagem interrompida")
		}
	})
}
