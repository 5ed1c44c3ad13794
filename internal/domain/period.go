package domain

import (
	"errors"
	"fmt"
	"time"
)

type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodCustom  PeriodType = "custom"
)

var (
	ErrInvalidPeriodType  = errors.New("tipo de período inválido")
	ErrMissingCustomRange = errors.New("período personalizado exige data de início e fim")
	ErrInvalidCustomRange = errors.New("a data de início não pode ser posterior à data de fim")
)

// Rótulos exibidos no filtro de período do painel
var PeriodLabels = map[PeriodType]string{
	PeriodDaily:   "일간",
	PeriodWeekly:  "주간",
	PeriodMonthly: "월간",
	PeriodCustom:  "직접 설정",
}

func ParsePeriodType(s string) (PeriodType, error) {
	if s == "" {
		return PeriodDaily, nil
	}

	p := PeriodType(s)
	if _, ok := PeriodLabels[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriodType, s)
	}
	return p, nil
}

// DateRange é um intervalo semiaberto [Start, End) de dias de calendário
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days retorna o número de dias de calendário do intervalo
func (r DateRange) Days() int {
	if !r.End.After(r.Start) {
		return 0
	}
	return daysBetween(r.Start, r.End)
}

// Contains indica se o dia de calendário informado pertence ao intervalo.
// Só a data (ano, mês, dia) é considerada, sem conversão de fuso.
func (r DateRange) Contains(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, r.Start.Location())
	return !d.Before(r.Start) && d.Before(r.End)
}

// Dates lista cada dia do intervalo em ordem crescente
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// CustomRange é o intervalo inclusivo [Start, End] escolhido pelo usuário
type CustomRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (c *CustomRange) Key() string {
	if c == nil {
		return ""
	}
	return c.Start.Format(time.DateOnly) + "_" + c.End.Format(time.DateOnly)
}

// ComparisonWindow agrupa o período atual e o período anterior de mesmo tamanho
type ComparisonWindow struct {
	Type     PeriodType `json:"type"`
	Current  DateRange  `json:"current"`
	Previous DateRange  `json:"previous"`
}

// ComputeWindow calcula as janelas atual e anterior a partir da data de referência.
// O dia de referência é excluído porque as plataformas consolidam os dados com ~24h de atraso.
func ComputeWindow(periodType PeriodType, reference time.Time, custom *CustomRange) (ComparisonWindow, error) {
	loc := reference.Location()
	today := TruncateDay(reference, loc)

	var current DateRange
	switch periodType {
	case PeriodDaily:
		current = DateRange{Start: today.AddDate(0, 0, -1), End: today}
	case PeriodWeekly:
		current = DateRange{Start: today.AddDate(0, 0, -7), End: today}
	case PeriodMonthly:
		current = DateRange{Start: today.AddDate(0, 0, -30), End: today}
	case PeriodCustom:
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
			return ComparisonWindow{}, ErrMissingCustomRange
		}
		start := TruncateDay(custom.Start, loc)
		end := TruncateDay(custom.End, loc)
		if start.After(end) {
			return ComparisonWindow{}, fmt.Errorf("%w: %s > %s", ErrInvalidCustomRange,
				start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
		current = DateRange{Start: start, End: end.AddDate(0, 0, 1)}
	default:
		return ComparisonWindow{}, fmt.Errorf("%w: %s", ErrInvalidPeriodType, periodType)
	}

	days := current.Days()
	previous := DateRange{Start: current.Start.AddDate(0, 0, -days), End: current.Start}

	return ComparisonWindow{
		Type:     periodType,
		Current:  current,
		Previous: previous,
	}, nil
}

// Span cobre as duas janelas, do início do período anterior ao fim do atual
func (w ComparisonWindow) Span() DateRange {
	return DateRange{Start: w.Previous.Start, End: w.Current.End}
}

// TruncateDay normaliza o horário para meia-noite no fuso informado
func TruncateDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func daysBetween(start, end time.Time) int {
	days := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
