package domain

import (
	"math"
	"time"
)

type Influencer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Handle         string    `json:"handle"`
	Platform       string    `json:"platform"`
	Category       []string  `json:"category"`
	Followers      int64     `json:"followers"`
	EngagementRate float64   `json:"engagement_rate"`
	AvgLikes       int64     `json:"avg_likes"`
	AvgComments    int64     `json:"avg_comments"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	ProfileImage   string    `json:"profile_image"`
	CreatedAt      time.Time `json:"created_at"`
	LastModified   time.Time `json:"last_modified"`
}

// EstimateEngagement estima engajamento e médias a partir do número de seguidores,
// já que a base do Notion não guarda esses valores.
func (i *Influencer) EstimateEngagement() {
	if i.Followers <= 0 {
		i.EngagementRate = 0
		i.AvgLikes = 0
		i.AvgComments = 0
		return
	}

	rate := math.Min(5, 10000/float64(i.Followers)*2)
	i.EngagementRate = math.Round(rate*10) / 10
	i.AvgLikes = int64(math.Round(float64(i.Followers) * rate / 100))
	i.AvgComments = int64(math.Round(float64(i.AvgLikes) * 0.1))
}
