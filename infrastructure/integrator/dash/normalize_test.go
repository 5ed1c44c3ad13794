package dash

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dashdomain "github.com/vfg2006/brand-insights-api/infrastructure/integrator/dash/domain"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

func statisticsFixture() []dashdomain.AdStatisticsCampaign {
	return []dashdomain.AdStatisticsCampaign{
		{
			CampaignID:      "C1",
			CampaignName:    "Lançamento",
			Objective:       "OUTCOME_SALES",
			EffectiveStatus: "ACTIVE",
			CreatedTime:     "2023-12-01T09:00:00+09:00",
			DashAdSetResponses: []dashdomain.AdSetStatistics{
				{
					AdSetID:              "S1",
					AdSetName:            "Público frio",
					DashAdAccountInsight: &dashdomain.AdAccountInsight{LastSyncedAt: "2024-01-02T03:04:05"},
					Responses: []dashdomain.AdDailyInsight{
						{
							AdID:        "A",
							AdName:      "Vídeo",
							Time:        "2024-01-01",
							Spend:       "100.25",
							Reach:       "900",
							Impressions: "1000",
							Clicks:      "10",
							Actions: []dashdomain.Action{
								{ActionType: "link_click", Value: "10"},
								{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
							},
							ActionValues: []dashdomain.Action{
								{ActionType: "omni_purchase", Value: "999"},
								{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "300.50"},
							},
						},
						{
							AdID:        "B",
							Time:        "2024-01-01T00:00:00",
							Spend:       "-5",
							Reach:       "abc",
							Impressions: "-100",
							Clicks:      "",
						},
					},
				},
			},
		},
	}
}

func TestNormalizeStatistics(t *testing.T) {
	details := map[string]dashdomain.AdDetailInfo{
		"A": {AdID: "A", EffectiveStatus: "PAUSED", ThumbnailURL: "https://img/a.jpg", Body: "Compre já"},
		"B": {AdID: "B", AdName: "Carrossel"},
	}

	rows := NormalizeStatistics(statisticsFixture(), details, time.UTC)

	require.Len(t, rows, 2)

	a := rows[0]
	assert.Equal(t, "C1", a.CampaignID)
	assert.Equal(t, "S1", a.AdSetID)
	assert.Equal(t, "A", a.AdID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), a.Date)
	assert.True(t, decimal.RequireFromString("100.25").Equal(a.Spend))
	assert.Equal(t, int64(900), a.Reach)
	assert.Equal(t, int64(1000), a.Impressions)
	assert.Equal(t, int64(10), a.Clicks)
	assert.Equal(t, int64(2), a.Results, "resultado vem do action_type do objetivo")
	assert.True(t, decimal.RequireFromString("300.50").Equal(a.Revenue), "pixel de compra tem prioridade")
	assert.Equal(t, domain.AdStatusPaused, a.PlatformStatus, "status do detalhe prevalece sobre o da campanha")
	assert.Equal(t, "https://img/a.jpg", a.ThumbnailURL)
	assert.Equal(t, "Compre já", a.CreativeMessage)
	require.NotNil(t, a.LastSyncedAt)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), a.LastSyncedAt.UTC())
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), a.CampaignCreated.UTC())

	b := rows[1]
	assert.Equal(t, "Carrossel", b.AdName, "nome vem do detalhe quando a linha não traz")
	assert.True(t, b.Spend.IsZero())
	assert.Zero(t, b.Reach)
	assert.Zero(t, b.Impressions)
	assert.Zero(t, b.Clicks)
	assert.Equal(t, domain.AdStatusActive, b.PlatformStatus)
}

func TestNormalizeStatistics_DiscardsRowsWithoutDate(t *testing.T) {
	campaigns := []dashdomain.AdStatisticsCampaign{{
		CampaignID: "C1",
		DashAdSetResponses: []dashdomain.AdSetStatistics{{
			AdSetID: "S1",
			Responses: []dashdomain.AdDailyInsight{
				{AdID: "A", Time: ""},
				{AdID: "", Time: "2024-01-01"},
				{AdID: "B", Time: "01/01/2024"},
			},
		}},
	}}

	rows := NormalizeStatistics(campaigns, nil, time.UTC)

	assert.Empty(t, rows)
}

func TestNormalizeStatistics_DayInReportLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	rows := NormalizeStatistics(statisticsFixture(), nil, seoul)

	require.NotEmpty(t, rows)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, seoul), rows[0].Date)
	assert.Equal(t, domain.AdStatusActive, rows[0].PlatformStatus)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
	}{
		{
			name:     "Sem fuso é tratado como UTC",
			value:    "2024-01-02T10:00:00",
			expected: ptrTime(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Com Z",
			value:    "2024-01-02T10:00:00Z",
			expected: ptrTime(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Com frações de segundo",
			value:    "2024-01-02T10:00:00.123",
			expected: ptrTime(time.Date(2024, 1, 2, 10, 0, 0, 123000000, time.UTC)),
		},
		{
			name:     "Vazio",
			value:    "",
			expected: nil,
		},
		{
			name:     "Inválido",
			value:    "ontem",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimestamp(tt.value)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}

func TestResultFromActions(t *testing.T) {
	actions := []dashdomain.Action{
		{ActionType: "link_click", Value: "42"},
		{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "7"},
	}

	assert.Equal(t, int64(42), resultFromActions("OUTCOME_TRAFFIC", actions))
	assert.Equal(t, int64(7), resultFromActions("OUTCOME_ENGAGEMENT", actions))
	assert.Zero(t, resultFromActions("OUTCOME_LEADS", actions))
	assert.Zero(t, resultFromActions("DESCONHECIDO", actions))
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
