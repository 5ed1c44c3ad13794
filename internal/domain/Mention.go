package domain

import "time"

// Mention é um conteúdo publicado por um influenciador e vinculado a uma campanha
type Mention struct {
	ID             string    `json:"id"`
	InfluencerName string    `json:"influencer_name"`
	Handle         string    `json:"handle"`
	Platform       string    `json:"platform"`
	Type           string    `json:"type"`
	Likes          int64     `json:"likes"`
	Comments       int64     `json:"comments"`
	Shares         int64     `json:"shares"`
	Views          int64     `json:"views"`
	Reach          int64     `json:"reach"`
	Impressions    int64     `json:"impressions"`
	EngagementRate float64   `json:"engagement_rate"`
	PostURL        string    `json:"post_url"`
	PostedAt       string    `json:"posted_at"`
	Caption        string    `json:"caption"`
	Thumbnail      string    `json:"thumbnail"`
	CreatedAt      time.Time `json:"created_at"`
}

type MentionPerformance struct {
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Views       int64 `json:"views"`
}

func (p MentionPerformance) Add(m Mention) MentionPerformance {
	return MentionPerformance{
		Reach:       p.Reach + m.Reach,
		Impressions: p.Impressions + m.Impressions,
		Likes:       p.Likes + m.Likes,
		Comments:    p.Comments + m.Comments,
		Shares:      p.Shares + m.Shares,
		Views:       p.Views + m.Views,
	}
}

type DashboardStats struct {
	TotalCampaigns   int                `json:"total_campaigns"`
	TotalInfluencers int                `json:"total_influencers"`
	TotalMentions    int                `json:"total_mentions"`
	Performance      MentionPerformance `json:"performance"`
}
