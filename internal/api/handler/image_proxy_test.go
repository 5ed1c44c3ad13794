package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

func TestImageProxy(t *testing.T) {
	var gotHeaders http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		switch r.URL.Path {
		case "/photo.webp":
			w.Header().Set("Content-Type", "image/webp")
			_, _ = io.WriteString(w, "webp-bytes")
		case "/raw":
			w.Header()["Content-Type"] = nil
			_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer upstream.Close()

	proxy := func(target string) *httptest.ResponseRecorder {
		return serve(ImageProxyRoutes(upstream.Client(), nil), nil, http.MethodGet, target, "")
	}

	t.Run("repassa a imagem com cache e cabeçalhos de navegador", func(t *testing.T) {
		rec := proxy("/v1/image-proxy?url=" + url.QueryEscape(upstream.URL+"/photo.webp"))

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "webp-bytes", rec.Body.String())
		assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400, s-maxage=86400", rec.Header().Get("Cache-Control"))

		require.NotNil(t, gotHeaders)
		assert.Equal(t, proxyUserAgent, gotHeaders.Get("User-Agent"))
		assert.Equal(t, "https://www.instagram.com/", gotHeaders.Get("Referer"))
		assert.Contains(t, gotHeaders.Get("Accept"), "image/webp")
	})

	t.Run("content type ausente vira image/jpeg", func(t *testing.T) {
		rec := proxy("/v1/image-proxy?url=" + url.QueryEscape(upstream.URL+"/raw"))

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	})

	t.Run("status da origem é repassado", func(t *testing.T) {
		rec := proxy("/v1/image-proxy?url=" + url.QueryEscape(upstream.URL+"/blocked"))

		requireStatus(t, rec, http.StatusForbidden)
		assert.Empty(t, rec.Header().Get("Cache-Control"))
	})

	t.Run("url ausente", func(t *testing.T) {
		rec := proxy("/v1/image-proxy")

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("esquema não suportado", func(t *testing.T) {
		rec := proxy("/v1/image-proxy?url=" + url.QueryEscape("file:///etc/passwd"))

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}
