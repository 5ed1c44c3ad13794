package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/internal/api/handler/router"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"github.com/vfg2006/brand-insights-api/pkg/middleware"
)

var memberClaims = &domain.Claims{
	DashMemberID: "member-1",
	LoginID:      "brand01",
	Name:         "Marca",
	Role:         domain.RoleMember,
}

var adminClaims = &domain.Claims{
	DashMemberID: "admin-1",
	LoginID:      "admin",
	Role:         domain.RoleAdmin,
}

// serve monta as rotas num router real e injeta as claims como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, method, target string, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
