package domain

// Campaign é uma campanha de influenciadores cadastrada no Notion
type Campaign struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CampaignType string  `json:"campaign_type"`
	ProductType  string  `json:"product_type"`
	Participants int     `json:"participants"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Manager      string  `json:"manager"`
	Status       string  `json:"status"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
}

const (
	DefaultCampaignType   = "협찬"
	DefaultCampaignStatus = "active"
)
