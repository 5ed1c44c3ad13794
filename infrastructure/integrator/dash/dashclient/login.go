package dashclient

import (
	"context"
	"net/http"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
)

// Login valida as credenciais no backend dash. A senha não é guardada.
func (c *DashClient) Login(ctx context.Context, userID, password string) (*dashdomain.Member, error) {
	payload := dashdomain.LoginRequest{
		UserID:   userID,
		Password: password,
	}

	member := &dashdomain.Member{}
	if err := c.do(ctx, http.MethodPost, "/api/v1/dash-members/login", nil, payload, member); err != nil {
		return nil, err
	}

	return member, nil
}
