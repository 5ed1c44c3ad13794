package dash

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// NormalizeStatistics achata campanha → conjuntos → linhas diárias em uma linha por (anúncio, dia).
// Números inválidos ou negativos viram zero.
func NormalizeStatistics(campaigns []dashdomain.AdStatisticsCampaign, details map[string]dashdomain.AdDetailInfo, loc *time.Location) []domain.RawAdInsight {
	rows := make([]domain.RawAdInsight, 0)

	for _, c := range campaigns {
		created := parseTimestamp(c.CreatedTime)
		var campaignCreated time.Time
		if created != nil {
			campaignCreated = *created
		}

		for _, adSet := range c.DashAdSetResponses {
			var lastSynced *time.Time
			if adSet.DashAdAccountInsight != nil {
				lastSynced = parseTimestamp(adSet.DashAdAccountInsight.LastSyncedAt)
			}

			for _, r := range adSet.Responses {
				day, ok := parseDay(r.Time, loc)
				if !ok || r.AdID == "" {
					logrus.WithFields(logrus.Fields{
						"campaign_id": c.CampaignID,
						"adset_id":    adSet.AdSetID,
						"ad_id":       r.AdID,
						"time":        r.Time,
					}).Warn("insights: discarding ad row without ad id or valid date")
					continue
				}

				detail := details[r.AdID]

				adName := r.AdName
				if adName == "" {
					adName = detail.AdName
				}

				row := domain.RawAdInsight{
					CampaignID:      c.CampaignID,
					CampaignName:    c.CampaignName,
					AdSetID:         adSet.AdSetID,
					AdSetName:       adSet.AdSetName,
					AdID:            r.AdID,
					AdName:          adName,
					Date:            day,
					Spend:           parseMoney("spend", r.Spend),
					Reach:           parseCount("reach", r.Reach),
					Clicks:          parseCount("clicks", r.Clicks),
					Impressions:     parseCount("impressions", r.Impressions),
					Results:         resultFromActions(c.Objective, r.Actions),
					Revenue:         revenueFromActionValues(r.ActionValues),
					PlatformStatus:  domain.MapAdStatus(firstNonEmpty(detail.EffectiveStatus, adSet.EffectiveStatus, c.EffectiveStatus)),
					Objective:       c.Objective,
					ThumbnailURL:    detail.ThumbnailURL,
					CreativeMessage: detail.Body,
					CampaignCreated: campaignCreated,
					LastSyncedAt:    lastSynced,
				}
				row.Clamp()

				rows = append(rows, row)
			}
		}
	}

	return rows
}

// resultFromActions usa o action_type correspondente ao objetivo da campanha
func resultFromActions(objective string, actions []dashdomain.Action) int64 {
	actionType, ok := dashdomain.ObjectiveToActionType[objective]
	if !ok {
		if objective != "" && len(actions) > 0 {
			logrus.WithField("objective", objective).Debug("Objective not mapped")
		}
		return 0
	}

	for _, action := range actions {
		if action.ActionType == actionType {
			return parseCount(action.ActionType, action.Value)
		}
	}

	return 0
}

func revenueFromActionValues(values []dashdomain.Action) decimal.Decimal {
	for _, actionType := range dashdomain.PurchaseActionTypes {
		for _, v := range values {
			if v.ActionType == actionType {
				return parseMoney(v.ActionType, v.Value)
			}
		}
	}
	return decimal.Zero
}

func parseCount(field, value string) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to integer")
		return 0
	}

	if n < 0 {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("insights: negative value clamped to zero")
		return 0
	}

	return int64(n)
}

func parseMoney(field, value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to decimal")
		return decimal.Zero
	}

	if d.IsNegative() {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("insights: negative value clamped to zero")
		return decimal.Zero
	}

	return d
}

// parseDay aceita YYYY-MM-DD ou um timestamp ISO, usando só a parte da data
func parseDay(value string, loc *time.Location) (time.Time, bool) {
	if len(value) < len(time.DateOnly) {
		return time.Time{}, false
	}

	day, err := time.ParseInLocation(time.DateOnly, value[:len(time.DateOnly)], loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// parseTimestamp trata horários sem fuso como UTC
func parseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return &t
	}

	if t, err := time.Parse(time.RFC3339Nano, value+"Z"); err == nil {
		return &t
	}

	if t, err := time.ParseInLocation(time.DateOnly, value, time.UTC); err == nil {
		return &t
	}

	logrus.WithField("value", value).Warn("insights: invalid timestamp ignored")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
