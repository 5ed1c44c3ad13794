package dashclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
)

func memberPath(dashMemberID, resource string) string {
	return fmt.Sprintf("/api/v1/dash-members/%s/%s", url.PathEscape(dashMemberID), resource)
}

func (c *DashClient) GetMemberInsights(ctx context.Context, dashMemberID string) ([]dashdomain.MemberInsight, error) {
	var insights []dashdomain.MemberInsight
	if err := c.do(ctx, http.MethodGet, memberPath(dashMemberID, "insights"), nil, nil, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

func (c *DashClient) GetFollowers(ctx context.Context, dashMemberID string) ([]dashdomain.Follower, error) {
	var followers []dashdomain.Follower
	if err := c.do(ctx, http.MethodGet, memberPath(dashMemberID, "followers"), nil, nil, &followers); err != nil {
		return nil, err
	}
	return followers, nil
}

func (c *DashClient) GetFollowerInsights(ctx context.Context, dashMemberID string) ([]dashdomain.FollowerInsight, error) {
	var insights []dashdomain.FollowerInsight
	if err := c.do(ctx, http.MethodGet, memberPath(dashMemberID, "follower-insights"), nil, nil, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

func (c *DashClient) GetMedia(ctx context.Context, dashMemberID string) ([]dashdomain.MediaResponse, error) {
	var media []dashdomain.MediaResponse
	if err := c.do(ctx, http.MethodGet, memberPath(dashMemberID, "media"), nil, nil, &media); err != nil {
		return nil, err
	}
	return media, nil
}
