package dashclient

import (
	"context"
	"net/http"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
)

func (c *DashClient) CreateCampaignResults(ctx context.Context, results []dashdomain.CampaignResult) error {
	if len(results) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPost, "/api/v1/dash-campaigns/result/create", nil, results, nil)
}
