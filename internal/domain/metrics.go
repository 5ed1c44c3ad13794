package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CTR calcula a taxa de cliques em porcentagem. Retorna 0 quando não há impressões.
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// CPC calcula o custo por clique. Retorna 0 quando não há cliques.
func CPC(spend decimal.Decimal, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return spend.Div(decimal.NewFromInt(clicks)).InexactFloat64()
}

// ROAS calcula o retorno sobre o investimento em anúncios. Retorna 0 quando não há gasto.
func ROAS(revenue, spend decimal.Decimal) float64 {
	if !spend.IsPositive() {
		return 0
	}
	return revenue.Div(spend).InexactFloat64()
}

// CostPerResult calcula o custo por resultado. Retorna 0 quando não há resultados.
func CostPerResult(spend decimal.Decimal, results int64) float64 {
	if results <= 0 {
		return 0
	}
	return spend.Div(decimal.NewFromInt(results)).InexactFloat64()
}

// EngagementRate calcula (curtidas + comentários + salvamentos) / alcance * 100.
// Retorna 0 quando o alcance é 0.
func EngagementRate(likes, comments, saves, reach int64) float64 {
	if reach <= 0 {
		return 0
	}
	return float64(likes+comments+saves) / float64(reach) * 100
}

// Growth calcula a variação percentual entre o período atual e o anterior.
// Sem base de comparação (previous = 0) o crescimento é 0, mesmo que current > 0.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// DecimalGrowth é Growth para valores monetários
func DecimalGrowth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}
