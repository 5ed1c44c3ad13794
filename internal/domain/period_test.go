package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWindow(t *testing.T) {
	reference := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   PeriodType
		custom   *CustomRange
		current  DateRange
		previous DateRange
	}{
		{
			name:     "Diário usa ontem e anteontem",
			period:   PeriodDaily,
			current:  DateRange{Start: day(2024, 3, 14), End: day(2024, 3, 15)},
			previous: DateRange{Start: day(2024, 3, 13), End: day(2024, 3, 14)},
		},
		{
			name:     "Semanal usa os 7 dias até ontem",
			period:   PeriodWeekly,
			current:  DateRange{Start: day(2024, 3, 8), End: day(2024, 3, 15)},
			previous: DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 8)},
		},
		{
			name:     "Mensal usa os 30 dias até ontem",
			period:   PeriodMonthly,
			current:  DateRange{Start: day(2024, 2, 14), End: day(2024, 3, 15)},
			previous: DateRange{Start: day(2024, 1, 15), End: day(2024, 2, 14)},
		},
		{
			name:     "Personalizado inclui o dia final",
			period:   PeriodCustom,
			custom:   &CustomRange{Start: day(2024, 2, 1), End: day(2024, 2, 10)},
			current:  DateRange{Start: day(2024, 2, 1), End: day(2024, 2, 11)},
			previous: DateRange{Start: day(2024, 1, 22), End: day(2024, 2, 1)},
		},
		{
			name:     "Personalizado de um único dia",
			period:   PeriodCustom,
			custom:   &CustomRange{Start: day(2024, 2, 1), End: day(2024, 2, 1)},
			current:  DateRange{Start: day(2024, 2, 1), End: day(2024, 2, 2)},
			previous: DateRange{Start: day(2024, 1, 31), End: day(2024, 2, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ComputeWindow(tt.period, reference, tt.custom)
			require.NoError(t, err)

			assert.True(t, tt.current.Start.Equal(window.Current.Start), "início atual %s", window.Current.Start)
			assert.True(t, tt.current.End.Equal(window.Current.End), "fim atual %s", window.Current.End)
			assert.True(t, tt.previous.Start.Equal(window.Previous.Start), "início anterior %s", window.Previous.Start)
			assert.True(t, tt.previous.End.Equal(window.Previous.End), "fim anterior %s", window.Previous.End)

			assert.Equal(t, window.Current.Days(), window.Previous.Days())
			assert.False(t, window.Previous.End.After(window.Current.Start), "janelas não podem se sobrepor")
		})
	}
}

func TestComputeWindowRejectsInvertedCustomRange(t *testing.T) {
	_, err := ComputeWindow(PeriodCustom, time.Now(), &CustomRange{
		Start: day(2024, 2, 10),
		End:   day(2024, 2, 1),
	})

	assert.ErrorIs(t, err, ErrInvalidCustomRange)
}

func TestComputeWindowErrors(t *testing.T) {
	_, err := ComputeWindow(PeriodCustom, time.Now(), nil)
	assert.ErrorIs(t, err, ErrMissingCustomRange)

	_, err = ComputeWindow(PeriodType("yearly"), time.Now(), nil)
	assert.ErrorIs(t, err, ErrInvalidPeriodType)

	_, err = ParsePeriodType("hourly")
	assert.ErrorIs(t, err, ErrInvalidPeriodType)

	p, err := ParsePeriodType("")
	assert.NoError(t, err)
	assert.Equal(t, PeriodDaily, p)
}

func TestComputeWindowUsesReferenceTimezone(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 2024-03-14 20:00 UTC já é dia 15 em Seul
	reference := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC).In(seoul)

	window, err := ComputeWindow(PeriodDaily, reference, nil)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-14", window.Current.Start.Format(time.DateOnly))
	assert.Equal(t, "2024-03-15", window.Current.End.Format(time.DateOnly))
}

func TestDateRangeDates(t *testing.T) {
	r := DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 3)}

	dates := r.Dates()

	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-01", dates[0].Format(time.DateOnly))
	assert.Equal(t, "2024-01-02", dates[1].Format(time.DateOnly))
	assert.True(t, r.Contains(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day(2024, 1, 3)))
	assert.Equal(t, "1/2", DayLabel(dates[1]))
}
