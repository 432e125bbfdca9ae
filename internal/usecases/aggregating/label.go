package aggregating

import (
	"fmt"
	"time"
)

// FormatDateLabel formata a data como "January 2 2006"
func FormatDateLabel(date time.Time) string {
	return fmt.Sprintf("%s %d %d", date.Month().String(), date.Day(), date.Year())
}

// FormatDateRangeLabel formata os limites do período exibido no gráfico
func FormatDateRangeLabel(start, end time.Time) (string, string) {
	return FormatDateLabel(start), FormatDateLabel(end)
}
