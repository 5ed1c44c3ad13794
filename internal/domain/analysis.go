package domain

import "time"

type AnalysisType string

const (
	AnalysisCampaign AnalysisType = "campaign"
	AnalysisProfile  AnalysisType = "profile"
	AnalysisAds      AnalysisType = "ads"
)

type CampaignContent struct {
	InfluencerName string `json:"influencer_name"`
	Type           string `json:"type"`
	Likes          int64  `json:"likes"`
	Comments       int64  `json:"comments"`
	Views          int64  `json:"views"`
	Caption        string `json:"caption"`
	PostedAt       string `json:"posted_at"`
}

type TopInfluencer struct {
	Name     string `json:"name"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

type CampaignPerformanceSummary struct {
	TotalLikes     int64           `json:"total_likes"`
	TotalComments  int64           `json:"total_comments"`
	TotalShares    int64           `json:"total_shares"`
	TotalViews     int64           `json:"total_views"`
	ContentCount   int             `json:"content_count"`
	TopInfluencers []TopInfluencer `json:"top_influencers"`
}

// AnalysisRequest carrega os agregados enviados pelo painel para cada tipo de análise
type AnalysisRequest struct {
	Type                AnalysisType                `json:"type"`
	CampaignName        string                      `json:"campaign_name"`
	Contents            []CampaignContent           `json:"contents"`
	PerformanceData     *CampaignPerformanceSummary `json:"performance_data"`
	ProfileData         *ProfileInsight             `json:"profile_data"`
	FollowerDemographic *FollowerDemographic        `json:"follower_demographic"`
	RecentContent       []ContentItem               `json:"recent_content"`
	AdData              *AdPerformance              `json:"ad_data"`
	TopCampaigns        []*AggregateNode            `json:"top_campaigns"`
	DailyData           []DailyPoint                `json:"daily_data"`
}

type Analysis struct {
	Summary        string    `json:"summary"`
	Insights       []string  `json:"insights"`
	Recommendation string    `json:"recommendation"`
	Fallback       bool      `json:"fallback"`
	GeneratedAt    time.Time `json:"generated_at"`
}
