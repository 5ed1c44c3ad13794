package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AdStatus string

const (
	AdStatusActive AdStatus = "active"
	AdStatusPaused AdStatus = "paused"
	AdStatusEnded  AdStatus = "ended"
)

// MapAdStatus converte o status efetivo da plataforma no status interno
func MapAdStatus(platformStatus string) AdStatus {
	switch strings.ToUpper(strings.TrimSpace(platformStatus)) {
	case "ACTIVE":
		return AdStatusActive
	case "PAUSED":
		return AdStatusPaused
	default:
		return AdStatusEnded
	}
}

// RawAdInsight representa o desempenho de um anúncio em um único dia
type RawAdInsight struct {
	DashMemberID    string          `json:"dash_member_id"`
	CampaignID      string          `json:"campaign_id"`
	CampaignName    string          `json:"campaign_name"`
	AdSetID         string          `json:"adset_id"`
	AdSetName       string          `json:"adset_name"`
	AdID            string          `json:"ad_id"`
	AdName          string          `json:"ad_name"`
	Date            time.Time       `json:"date"`
	Spend           decimal.Decimal `json:"spend"`
	Reach           int64           `json:"reach"`
	Clicks          int64           `json:"clicks"`
	Impressions     int64           `json:"impressions"`
	Results         int64           `json:"results"`
	Revenue         decimal.Decimal `json:"revenue"`
	PlatformStatus  AdStatus        `json:"platform_status"`
	Objective       string          `json:"objective"`
	ThumbnailURL    string          `json:"thumbnail_url"`
	CreativeMessage string          `json:"creative_message"`
	CampaignCreated time.Time       `json:"campaign_created_time"`
	LastSyncedAt    *time.Time      `json:"last_synced_at"`
}

// Clamp zera valores negativos, que nunca são válidos para contadores ou valores monetários
func (r *RawAdInsight) Clamp() {
	if r.Spend.IsNegative() {
		r.Spend = decimal.Zero
	}
	if r.Revenue.IsNegative() {
		r.Revenue = decimal.Zero
	}
	r.Reach = max(r.Reach, 0)
	r.Clicks = max(r.Clicks, 0)
	r.Impressions = max(r.Impressions, 0)
	r.Results = max(r.Results, 0)
}

// WithoutMetrics mantém só os metadados da linha
func (r RawAdInsight) WithoutMetrics() RawAdInsight {
	r.Spend = decimal.Zero
	r.Revenue = decimal.Zero
	r.Reach = 0
	r.Clicks = 0
	r.Impressions = 0
	r.Results = 0
	return r
}

// Rótulos dos objetivos de campanha exibidos no painel
var ObjectiveLabel = map[string]string{
	"OUTCOME_TRAFFIC":       "트래픽",
	"OUTCOME_SALES":         "판매",
	"OUTCOME_LEADS":         "리드 생성",
	"OUTCOME_ENGAGEMENT":    "참여",
	"OUTCOME_AWARENESS":     "인지도",
	"OUTCOME_APP_PROMOTION": "앱 홍보",
	"LINK_CLICKS":           "링크 클릭",
	"OFFSITE_CONVERSIONS":   "전환",
	"POST_ENGAGEMENT":       "게시물 참여",
	"VIDEO_VIEWS":           "동영상 조회",
	"REACH":                 "도달",
	"BRAND_AWARENESS":       "브랜드 인지도",
	"MESSAGES":              "메시지",
	"CONVERSIONS":           "전환",
	"PRODUCT_CATALOG_SALES": "카탈로그 판매",
	"STORE_VISITS":          "매장 방문",
}

func FormatObjective(objective string) string {
	if label, ok := ObjectiveLabel[objective]; ok {
		return label
	}
	if objective == "" {
		return "미설정"
	}
	return objective
}
