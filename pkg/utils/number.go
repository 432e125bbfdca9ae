package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata o valor como no eixo dos gráficos: "$" seguido do valor com duas casas
func FormatCurrency(f float64) string {
	return "$" + strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}
