package dashdomain

// AdStatisticsCampaign é uma campanha do resumo de estatísticas de anúncios
type AdStatisticsCampaign struct {
	CampaignID         string            `json:"campaignId"`
	CampaignName       string            `json:"campaignName"`
	Objective          string            `json:"objective"`
	EffectiveStatus    string            `json:"effectiveStatus"`
	CreatedTime        string            `json:"createdTime"`
	DashAdSetResponses []AdSetStatistics `json:"dashAdSetResponses"`
}

type AdSetStatistics struct {
	AdSetID              string            `json:"adSetId"`
	AdSetName            string            `json:"adSetName"`
	EffectiveStatus      string            `json:"effectiveStatus"`
	DashAdAccountInsight *AdAccountInsight `json:"dashAdAccountInsight"`
	Responses            []AdDailyInsight  `json:"responses"`
}

type AdAccountInsight struct {
	AdAccountID  string `json:"adAccountId"`
	LastSyncedAt string `json:"lastSyncedAt"`
}

// AdDailyInsight é a linha diária de um anúncio. Os números chegam como texto.
type AdDailyInsight struct {
	AdID         string   `json:"adId"`
	AdName       string   `json:"adName"`
	Time         string   `json:"time"`
	Spend        string   `json:"spend"`
	Reach        string   `json:"reach"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"actionValues"`
}

type Action struct {
	ActionType string `json:"actionType"`
	Value      string `json:"value"`
}

// AdDetailInfo traz os dados de criativo e o status efetivo de um anúncio
type AdDetailInfo struct {
	AdID            string `json:"adId"`
	AdName          string `json:"adName"`
	EffectiveStatus string `json:"effectiveStatus"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	Body            string `json:"body"`
}

type AdDetailInfoRequest struct {
	AdIDs   []string `json:"adIds"`
	EndTime string   `json:"endTime"`
}
