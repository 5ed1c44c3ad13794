package insighting

import (
	"cmp"
	"slices"
	"time"

	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// BuildDailySeries gera exatamente um ponto por dia da janela atual, em ordem crescente.
// Dias sem linhas entram zerados.
func BuildDailySeries(rows []domain.RawAdInsight, window domain.ComparisonWindow) []domain.DailyPoint {
	return gapFill(bucketByDay(rows, window.Current), window.Current)
}

// BuildCampaignDailySeries gera uma série independente por campanha, ordenada pelo id da campanha
func BuildCampaignDailySeries(rows []domain.RawAdInsight, window domain.ComparisonWindow) []domain.CampaignDailySeries {
	byCampaign := make(map[string][]domain.RawAdInsight)
	names := make(map[string]string)
	for _, row := range rows {
		byCampaign[row.CampaignID] = append(byCampaign[row.CampaignID], row)
		if row.CampaignName != "" {
			names[row.CampaignID] = row.CampaignName
		}
	}

	series := make([]domain.CampaignDailySeries, 0, len(byCampaign))
	for campaignID, campaignRows := range byCampaign {
		series = append(series, domain.CampaignDailySeries{
			CampaignID:   campaignID,
			CampaignName: names[campaignID],
			Points:       gapFill(bucketByDay(campaignRows, window.Current), window.Current),
		})
	}

	slices.SortFunc(series, func(a, b domain.CampaignDailySeries) int {
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})

	return series
}

func bucketByDay(rows []domain.RawAdInsight, r domain.DateRange) map[string]domain.Totals {
	buckets := make(map[string]domain.Totals)
	for _, row := range rows {
		if !r.Contains(row.Date) {
			continue
		}
		key := row.Date.Format(time.DateOnly)
		buckets[key] = buckets[key].AddRow(row)
	}
	return buckets
}

func gapFill(buckets map[string]domain.Totals, r domain.DateRange) []domain.DailyPoint {
	days := r.Dates()
	points := make([]domain.DailyPoint, 0, len(days))
	for _, day := range days {
		points = append(points, domain.NewDailyPoint(day, buckets[day.Format(time.DateOnly)]))
	}
	return points
}

// SumRange soma as linhas de um intervalo
func SumRange(rows []domain.RawAdInsight, r domain.DateRange) domain.Totals {
	var totals domain.Totals
	for _, row := range rows {
		if r.Contains(row.Date) {
			totals = totals.AddRow(row)
		}
	}
	return totals
}
