package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DailyPoint é um ponto diário da série exibida nos gráficos
type DailyPoint struct {
	Date        string          `json:"date"`
	Label       string          `json:"label"`
	Spend       decimal.Decimal `json:"spend"`
	Clicks      int64           `json:"clicks"`
	Impressions int64           `json:"impressions"`
	Reach       int64           `json:"reach"`
	Results     int64           `json:"results"`
	Revenue     decimal.Decimal `json:"revenue"`
	CTR         float64         `json:"ctr"`
	CPC         float64         `json:"cpc"`
	ROAS        float64         `json:"roas"`
}

func NewDailyPoint(day time.Time, totals Totals) DailyPoint {
	ratios := totals.Derive()
	return DailyPoint{
		Date:        day.Format(time.DateOnly),
		Label:       DayLabel(day),
		Spend:       totals.Spend,
		Clicks:      totals.Clicks,
		Impressions: totals.Impressions,
		Reach:       totals.Reach,
		Results:     totals.Results,
		Revenue:     totals.Revenue,
		CTR:         ratios.CTR,
		CPC:         ratios.CPC,
		ROAS:        ratios.ROAS,
	}
}

// DayLabel formata o dia como M/D, sem zeros à esquerda
func DayLabel(day time.Time) string {
	return fmt.Sprintf("%d/%d", int(day.Month()), day.Day())
}

type CampaignDailySeries struct {
	CampaignID   string       `json:"campaign_id"`
	CampaignName string       `json:"campaign_name"`
	Points       []DailyPoint `json:"points"`
}
