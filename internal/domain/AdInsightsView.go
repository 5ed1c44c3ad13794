package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdPerformance reúne os KPIs do período atual e o crescimento em relação ao anterior
type AdPerformance struct {
	Spend               decimal.Decimal `json:"spend"`
	SpendGrowth         float64         `json:"spend_growth"`
	ROAS                float64         `json:"roas"`
	ROASGrowth          float64         `json:"roas_growth"`
	Results             int64           `json:"results"`
	ResultsGrowth       float64         `json:"results_growth"`
	CostPerResult       float64         `json:"cost_per_result"`
	CostPerResultGrowth float64         `json:"cost_per_result_growth"`
	Reach               int64           `json:"reach"`
	ReachGrowth         float64         `json:"reach_growth"`
	Impressions         int64           `json:"impressions"`
	ImpressionsGrowth   float64         `json:"impressions_growth"`
	Clicks              int64           `json:"clicks"`
	ClicksGrowth        float64         `json:"clicks_growth"`
	CTR                 float64         `json:"ctr"`
	CTRGrowth           float64         `json:"ctr_growth"`
	CPC                 float64         `json:"cpc"`
	CPCGrowth           float64         `json:"cpc_growth"`
}

func NewAdPerformance(current, previous Totals) AdPerformance {
	cur := current.Derive()
	prev := previous.Derive()

	return AdPerformance{
		Spend:               current.Spend,
		SpendGrowth:         DecimalGrowth(current.Spend, previous.Spend),
		ROAS:                cur.ROAS,
		ROASGrowth:          Growth(cur.ROAS, prev.ROAS),
		Results:             current.Results,
		ResultsGrowth:       Growth(float64(current.Results), float64(previous.Results)),
		CostPerResult:       cur.CostPerResult,
		CostPerResultGrowth: Growth(cur.CostPerResult, prev.CostPerResult),
		Reach:               current.Reach,
		ReachGrowth:         Growth(float64(current.Reach), float64(previous.Reach)),
		Impressions:         current.Impressions,
		ImpressionsGrowth:   Growth(float64(current.Impressions), float64(previous.Impressions)),
		Clicks:              current.Clicks,
		ClicksGrowth:        Growth(float64(current.Clicks), float64(previous.Clicks)),
		CTR:                 cur.CTR,
		CTRGrowth:           Growth(cur.CTR, prev.CTR),
		CPC:                 cur.CPC,
		CPCGrowth:           Growth(cur.CPC, prev.CPC),
	}
}

// AdInsightsView é a visão completa da aba de anúncios para um período
type AdInsightsView struct {
	DashMemberID   string                `json:"dash_member_id"`
	Window         ComparisonWindow      `json:"window"`
	DataVersion    int64                 `json:"data_version"`
	Performance    AdPerformance         `json:"performance"`
	Hierarchy      []*AggregateNode      `json:"hierarchy"`
	Daily          []DailyPoint          `json:"daily"`
	CampaignDaily  []CampaignDailySeries `json:"campaign_daily"`
	ServerSyncTime *time.Time            `json:"server_sync_time"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

type RefreshResult struct {
	DashMemberID string    `json:"dash_member_id"`
	Rows         int       `json:"rows"`
	DataVersion  int64     `json:"data_version"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}
