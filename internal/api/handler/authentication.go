package handler

import (
	"net/http"

	"github.com/vfg2006/brand-insights-api/internal/domain"
	"github.com/vfg2006/brand-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-insights-api/pkg/apiErrors"
)

type MeResponse struct {
	DashMemberID string             `json:"dash_member_id"`
	LoginID      string             `json:"login_id"`
	Name         string             `json:"name"`
	Role         string             `json:"role"`
	Member       *domain.DashMember `json:"member"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(r.Context(), req.LoginID, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetMe retorna as informações do membro logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrAbort(w, r)
		if !ok {
			return
		}

		member, err := service.GetMember(r.Context(), claims.DashMemberID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do membro")
			return
		}

		writeJSON(w, r, http.StatusOK, MeResponse{
			DashMemberID: claims.DashMemberID,
			LoginID:      claims.LoginID,
			Name:         claims.Name,
			Role:         claims.Role,
			Member:       member,
		})
	}
}
