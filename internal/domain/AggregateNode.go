package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type NodeLevel string

const (
	LevelCampaign NodeLevel = "campaign"
	LevelAdSet    NodeLevel = "adset"
	LevelAd       NodeLevel = "ad"
)

// DeliveryStatus é derivado da entrega dentro da janela, não do status da plataforma
type DeliveryStatus string

const (
	DeliveryActive DeliveryStatus = "active"
	DeliveryEnded  DeliveryStatus = "ended"
)

// Totals guarda as somas de um nó. As razões são sempre derivadas delas.
type Totals struct {
	Spend       decimal.Decimal `json:"total_spend"`
	Reach       int64           `json:"total_reach"`
	Clicks      int64           `json:"total_clicks"`
	Impressions int64           `json:"total_impressions"`
	Results     int64           `json:"total_results"`
	Revenue     decimal.Decimal `json:"total_revenue"`
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		Spend:       t.Spend.Add(other.Spend),
		Reach:       t.Reach + other.Reach,
		Clicks:      t.Clicks + other.Clicks,
		Impressions: t.Impressions + other.Impressions,
		Results:     t.Results + other.Results,
		Revenue:     t.Revenue.Add(other.Revenue),
	}
}

func (t Totals) AddRow(row RawAdInsight) Totals {
	return t.Add(Totals{
		Spend:       row.Spend,
		Reach:       row.Reach,
		Clicks:      row.Clicks,
		Impressions: row.Impressions,
		Results:     row.Results,
		Revenue:     row.Revenue,
	})
}

// HasDelivery indica se houve gasto, alcance ou cliques
func (t Totals) HasDelivery() bool {
	return !t.Spend.IsZero() || t.Reach != 0 || t.Clicks != 0
}

type Ratios struct {
	ROAS          float64 `json:"roas"`
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CostPerResult float64 `json:"cost_per_result"`
}

func (t Totals) Derive() Ratios {
	return Ratios{
		ROAS:          ROAS(t.Revenue, t.Spend),
		CTR:           CTR(t.Clicks, t.Impressions),
		CPC:           CPC(t.Spend, t.Clicks),
		CostPerResult: CostPerResult(t.Spend, t.Results),
	}
}

// AggregateNode é um nó da árvore campanha → conjunto de anúncios → anúncio
type AggregateNode struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Level           NodeLevel      `json:"level"`
	Status          DeliveryStatus `json:"status"`
	PlatformStatus  AdStatus       `json:"platform_status,omitempty"`
	Objective       string         `json:"objective,omitempty"`
	ObjectiveLabel  string         `json:"objective_label,omitempty"`
	CreatedTime     *time.Time     `json:"created_time,omitempty"`
	ThumbnailURL    string         `json:"thumbnail_url,omitempty"`
	CreativeMessage string         `json:"creative_message,omitempty"`
	Totals
	Ratios
	Children []*AggregateNode `json:"children"`
}
