package dashclient

import (
	"context"
	"net/http"
	"net/url"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
)

// GetAdStatisticsSummary busca campanhas, conjuntos e linhas diárias de anúncios do intervalo [startTime, endTime]
func (c *DashClient) GetAdStatisticsSummary(ctx context.Context, dashMemberID, startTime, endTime string) ([]dashdomain.AdStatisticsCampaign, error) {
	params := url.Values{}
	params.Add("dashMemberId", dashMemberID)
	params.Add("time", startTime)
	params.Add("endTime", endTime)

	var campaigns []dashdomain.AdStatisticsCampaign
	if err := c.do(ctx, http.MethodGet, "/api/v1/dash-ads/statistics/summary", params, nil, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *DashClient) GetAdDetailInfo(ctx context.Context, adIDs []string, endTime string) ([]dashdomain.AdDetailInfo, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}

	payload := dashdomain.AdDetailInfoRequest{
		AdIDs:   adIDs,
		EndTime: endTime,
	}

	var details []dashdomain.AdDetailInfo
	if err := c.do(ctx, http.MethodPost, "/api/v1/dash-ads/detail-info", nil, payload, &details); err != nil {
		return nil, err
	}

	return details, nil
}
