package analyzing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

func TestCount(t *testing.T) {
	assert.Equal(t, "0", count(0))
	assert.Equal(t, "999", count(999))
	assert.Equal(t, "1,234,567", count(1234567))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+12.3", signed(12.34))
	assert.Equal(t, "-4.0", signed(-4))
	assert.Equal(t, "+0.0", signed(0))
}

func TestBuildPrompt_Campaign(t *testing.T) {
	req := domain.AnalysisRequest{
		Type:     domain.AnalysisCampaign,
		Contents: []domain.CampaignContent{{InfluencerName: "ana", Caption: strings.Repeat("가", 250)}},
	}

	system, user := BuildPrompt(req)

	assert.Equal(t, systemPrompts[domain.AnalysisCampaign], system)
	assert.Contains(t, user, "캠페인명: 미정")
	assert.Contains(t, user, "없음")
	assert.Contains(t, user, strings.Repeat("가", maxCaptionRunes))
	assert.NotContains(t, user, strings.Repeat("가", maxCaptionRunes+1))
	assert.Contains(t, user, jsonOnly)
}

func TestBuildPrompt_Profile(t *testing.T) {
	req := domain.AnalysisRequest{
		Type:        domain.AnalysisProfile,
		ProfileData: &domain.ProfileInsight{Followers: 12000, FollowersGrowth: 2.5},
	}

	system, user := BuildPrompt(req)

	assert.Equal(t, systemPrompts[domain.AnalysisProfile], system)
	assert.Contains(t, user, "- 팔로워: 12,000 (+2.5%)")
	assert.Contains(t, user, "- 정보 없음")
	assert.Contains(t, user, "콘텐츠 데이터 없음")
}

func TestBuildPrompt_AdsKeepsLastSevenDays(t *testing.T) {
	daily := make([]domain.DailyPoint, 0, 10)
	for i := 1; i <= 10; i++ {
		daily = append(daily, domain.DailyPoint{Date: fmt.Sprintf("2024-01-%02d", i), Spend: decimal.NewFromInt(1000)})
	}

	req := domain.AnalysisRequest{
		Type:      domain.AnalysisAds,
		AdData:    &domain.AdPerformance{Spend: decimal.NewFromInt(7000), SpendGrowth: -10},
		DailyData: daily,
		TopCampaigns: []*domain.AggregateNode{
			{Name: "Promo", Totals: domain.Totals{Spend: decimal.NewFromInt(5000), Results: 3}},
		},
	}

	_, user := BuildPrompt(req)

	assert.Contains(t, user, "- 총 지출: ₩7,000 (-10.0%)")
	assert.Contains(t, user, "1. Promo: 지출 ₩5,000")
	assert.NotContains(t, user, "2024-01-03:")
	assert.Contains(t, user, "2024-01-04:")
	assert.Contains(t, user, "2024-01-10:")
}
