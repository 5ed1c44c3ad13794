package insighting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func windowOf(start, end time.Time) domain.ComparisonWindow {
	days := int(end.Sub(start).Hours() / 24)
	return domain.ComparisonWindow{
		Type:     domain.PeriodCustom,
		Current:  domain.DateRange{Start: start, End: end},
		Previous: domain.DateRange{Start: start.AddDate(0, 0, -days), End: start},
	}
}

func row(campaignID, adSetID, adID string, day time.Time, spend int64, clicks, impressions int64) domain.RawAdInsight {
	return domain.RawAdInsight{
		CampaignID:     campaignID,
		CampaignName:   "Campanha " + campaignID,
		AdSetID:        adSetID,
		AdSetName:      "Conjunto " + adSetID,
		AdID:           adID,
		AdName:         "Anúncio " + adID,
		Date:           day,
		Spend:          decimal.NewFromInt(spend),
		Clicks:         clicks,
		Impressions:    impressions,
		PlatformStatus: domain.AdStatusActive,
	}
}

// cenário de ponta a ponta: dois dias do anúncio A e um dia zerado do anúncio B
func scenarioRows() []domain.RawAdInsight {
	return []domain.RawAdInsight{
		row("C1", "S1", "A", date(2024, 1, 1), 100, 10, 1000),
		row("C1", "S1", "A", date(2024, 1, 2), 50, 5, 500),
		row("C1", "S1", "B", date(2024, 1, 1), 0, 0, 0),
	}
}

func TestBuildHierarchy_Scenario(t *testing.T) {
	window := windowOf(date(2024, 1, 1), date(2024, 1, 3))

	campaigns := BuildHierarchy(scenarioRows(), window)

	require.Len(t, campaigns, 1)
	campaign := campaigns[0]
	require.Len(t, campaign.Children, 1)

	adSet := campaign.Children[0]
	assert.Equal(t, domain.LevelAdSet, adSet.Level)
	assert.True(t, adSet.Spend.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(15), adSet.Clicks)
	assert.Equal(t, int64(1500), adSet.Impressions)
	assert.InDelta(t, 1.0, adSet.CTR, 1e-9)
	assert.InDelta(t, 10.0, adSet.CPC, 1e-9)

	require.Len(t, adSet.Children, 2)
	assert.Equal(t, "A", adSet.Children[0].ID)
	assert.Equal(t, "B", adSet.Children[1].ID)
	assert.Equal(t, domain.DeliveryActive, adSet.Children[0].Status)
	assert.Equal(t, domain.DeliveryEnded, adSet.Children[1].Status)
	assert.Zero(t, adSet.Children[1].CTR)
	assert.Zero(t, adSet.Children[1].CPC)

	assert.True(t, campaign.Spend.Equal(adSet.Spend))
	assert.Equal(t, domain.DeliveryActive, campaign.Status)
}

func TestBuildHierarchy_Conservation(t *testing.T) {
	window := windowOf(date(2024, 1, 1), date(2024, 1, 8))
	rows := []domain.RawAdInsight{
		row("C1", "S1", "A1", date(2024, 1, 1), 10, 1, 100),
		row("C1", "S1", "A2", date(2024, 1, 2), 20, 2, 200),
		row("C1", "S2", "A3", date(2024, 1, 3), 30, 3, 300),
		row("C1", "S2", "A3", date(2024, 1, 4), 40, 4, 400),
	}
	rows[0].Spend = decimal.RequireFromString("10.10")
	rows[1].Spend = decimal.RequireFromString("20.20")

	campaigns := BuildHierarchy(rows, window)

	require.Len(t, campaigns, 1)
	for _, campaign := range campaigns {
		sum := domain.Totals{}
		for _, adSet := range campaign.Children {
			childSum := domain.Totals{}
			for _, ad := range adSet.Children {
				childSum = childSum.Add(ad.Totals)
			}
			assert.True(t, childSum.Spend.Equal(adSet.Spend), "gasto do conjunto %s", adSet.ID)
			assert.Equal(t, childSum.Clicks, adSet.Clicks)
			assert.Equal(t, childSum.Impressions, adSet.Impressions)
			sum = sum.Add(adSet.Totals)
		}
		assert.True(t, sum.Spend.Equal(campaign.Spend))
		assert.True(t, campaign.Spend.Equal(decimal.RequireFromString("100.30")))
	}
}

func TestBuildHierarchy_InactiveEntitiesRemainVisible(t *testing.T) {
	window := windowOf(date(2024, 2, 1), date(2024, 2, 2))
	rows := []domain.RawAdInsight{
		row("C1", "S1", "A1", date(2024, 1, 15), 500, 50, 5000),
		row("C2", "S2", "A2", date(2024, 2, 1), 10, 1, 100),
	}

	campaigns := BuildHierarchy(rows, window)

	require.Len(t, campaigns, 2)
	byID := map[string]*domain.AggregateNode{}
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	old := byID["C1"]
	require.NotNil(t, old)
	assert.Equal(t, domain.DeliveryEnded, old.Status)
	assert.True(t, old.Spend.IsZero())
	assert.Equal(t, domain.AdStatusActive, old.PlatformStatus, "o status da plataforma é mantido separado")
	require.Len(t, old.Children, 1)
	assert.Equal(t, domain.DeliveryEnded, old.Children[0].Status)

	assert.Equal(t, domain.DeliveryActive, byID["C2"].Status)

	assert.Len(t, FilterByStatus(campaigns, StatusFilterActive), 1)
	assert.Len(t, FilterByStatus(campaigns, StatusFilterEnded), 1)
	assert.Len(t, FilterByStatus(campaigns, StatusFilterAll), 2)
}

func TestBuildHierarchy_Ordering(t *testing.T) {
	window := windowOf(date(2024, 1, 1), date(2024, 1, 2))
	older := row("C-old", "S1", "A1", date(2024, 1, 1), 1, 1, 1)
	older.CampaignCreated = date(2023, 6, 1)
	newer := row("C-new", "S2", "A2", date(2024, 1, 1), 1, 1, 1)
	newer.CampaignCreated = date(2023, 12, 1)
	tieB := row("C-b", "S3", "A3", date(2024, 1, 1), 1, 1, 1)
	tieB.CampaignCreated = date(2023, 9, 1)
	tieA := row("C-a", "S4", "A4", date(2024, 1, 1), 1, 1, 1)
	tieA.CampaignCreated = date(2023, 9, 1)

	campaigns := BuildHierarchy([]domain.RawAdInsight{older, tieB, newer, tieA}, window)

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"C-new", "C-a", "C-b", "C-old"}, ids)
}

func TestBuildHierarchy_EmptyInput(t *testing.T) {
	campaigns := BuildHierarchy(nil, windowOf(date(2024, 1, 1), date(2024, 1, 2)))
	assert.Empty(t, campaigns)
	assert.NotNil(t, campaigns)
}

func TestBuildHierarchy_ROASFromRevenue(t *testing.T) {
	window := windowOf(date(2024, 1, 1), date(2024, 1, 2))
	r := row("C1", "S1", "A1", date(2024, 1, 1), 200, 4, 400)
	r.Revenue = decimal.NewFromInt(800)
	r.Results = 4
	r.Objective = "OUTCOME_SALES"

	campaigns := BuildHierarchy([]domain.RawAdInsight{r}, window)

	require.Len(t, campaigns, 1)
	assert.InDelta(t, 4.0, campaigns[0].ROAS, 1e-9)
	assert.InDelta(t, 50.0, campaigns[0].CostPerResult, 1e-9)
	assert.Equal(t, "판매", campaigns[0].ObjectiveLabel)
}
