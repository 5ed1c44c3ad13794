package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{DashMemberID: "member-1", Role: domain.RoleMember}

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantClaims bool
	}{
		{
			name:       "rota pública dispensa token",
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "proxy de imagem é público",
			path:       "/v1/image-proxy",
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem cabeçalho",
			path:       "/v1/ads/insights",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "cabeçalho sem Bearer",
			path:       "/v1/ads/insights",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token expirado mantém o código",
			path:   "/v1/ads/insights",
			header: "Bearer expired",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token válido grava as claims",
			path:   "/v1/ads/insights",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantClaims: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(validator)
			}

			var gotClaims *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
			if tt.wantClaims {
				assert.Equal(t, claims, gotClaims)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		mw         func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "admin acessa rota de admin", claims: &domain.Claims{Role: domain.RoleAdmin}, mw: AdminOnly(), wantStatus: http.StatusNoContent},
		{name: "membro barrado em rota de admin", claims: &domain.Claims{Role: domain.RoleMember}, mw: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "membro acessa rota comum", claims: &domain.Claims{Role: domain.RoleMember}, mw: AllRoles(), wantStatus: http.StatusNoContent},
		{name: "sem claims", mw: AllRoles(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("origem permitida recebe os cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight responde sem chamar o próximo handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
