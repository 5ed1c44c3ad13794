package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// Percent retorna part/total*100 com uma casa decimal, ou 0 quando total é 0
func Percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return RoundWithOneDecimalPlace(float64(part) / float64(total) * 100)
}
