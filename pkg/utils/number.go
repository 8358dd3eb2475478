package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

const (
	maxIntFloat = float64(math.MaxInt)
	minIntFloat = float64(math.MinInt)
)

// RoundToInt arredonda para o inteiro mais próximo, metades para longe do zero.
// Valores fora da faixa de int saturam nos limites; NaN vira zero.
func RoundToInt(f float64) int {
	r := math.Round(f)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= maxIntFloat:
		return math.MaxInt
	case r <= minIntFloat:
		return math.MinInt
	}
	return int(r)
}
