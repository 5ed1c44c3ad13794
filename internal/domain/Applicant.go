package domain

type Applicant struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	InstagramID      string `json:"instagram_id"`
	AppliedAt        string `json:"applied_at"`
	Expectation      string `json:"expectation"`
	MarketingConsent bool   `json:"marketing_consent"`
}
