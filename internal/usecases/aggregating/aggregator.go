// Package aggregating contém as agregações por data usadas pelos gráficos do dashboard.
// Todas as funções são puras: recebem as vendas, a janela e o instante atual e não guardam estado.
package aggregating

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ErrInvalidWindow indica um seletor de período desconhecido
var ErrInvalidWindow = errors.New("seletor de período inválido")

// DateGroups mantém as vendas agrupadas por data na ordem da primeira ocorrência
type DateGroups struct {
	Keys   []string
	Groups map[string][]domain.SalesRecord
}

// UniqueDatesInOrder retorna cada data uma única vez, na ordem em que aparece
func UniqueDatesInOrder(records []domain.SalesRecord) []string {
	seen := make(map[string]struct{}, len(records))
	dates := make([]string, 0)

	for _, record := range records {
		if _, ok := seen[record.Date]; ok {
			continue
		}
		seen[record.Date] = struct{}{}
		dates = append(dates, record.Date)
	}

	return dates
}

// GroupByDate agrupa as vendas pela string exata da data
func GroupByDate(records []domain.SalesRecord) DateGroups {
	groups := DateGroups{
		Keys:   make([]string, 0),
		Groups: make(map[string][]domain.SalesRecord),
	}

	for _, record := range records {
		if _, ok := groups.Groups[record.Date]; !ok {
			groups.Keys = append(groups.Keys, record.Date)
		}
		groups.Groups[record.Date] = append(groups.Groups[record.Date], record)
	}

	return groups
}

// groupStats acumula soma e contagem de um grupo de vendas
type groupStats struct {
	allSum      float64
	allCount    int
	subsetSum   float64
	subsetCount int
}

func statsFor(records []domain.SalesRecord, partition domain.Partition) groupStats {
	var stats groupStats
	for _, record := range records {
		stats.allSum += record.Amount
		stats.allCount++
		if partition.Matches(record) {
			stats.subsetSum += record.Amount
			stats.subsetCount++
		}
	}
	return stats
}

// AveragePerDate calcula a média de valor por data para todas as vendas e para o subconjunto.
// Datas sem vendas do subconjunto ficam ausentes (nil) e não zeradas.
func AveragePerDate(records []domain.SalesRecord, partition domain.Partition) domain.DateSeries {
	return perDate(records, partition, func(sum float64, count int) float64 {
		return sum / float64(count)
	})
}

// TotalPerDate calcula a soma de valor por data.
// A ausência segue a mesma regra da média: só há ausência quando não existe venda do subconjunto.
func TotalPerDate(records []domain.SalesRecord, partition domain.Partition) domain.DateSeries {
	return perDate(records, partition, func(sum float64, _ int) float64 {
		return sum
	})
}

func perDate(records []domain.SalesRecord, partition domain.Partition, reduce func(sum float64, count int) float64) domain.DateSeries {
	groups := GroupByDate(records)

	series := domain.DateSeries{
		All:    make([]domain.DateValue, 0, len(groups.Keys)),
		Subset: make([]*domain.DateValue, 0, len(groups.Keys)),
	}

	for _, date := range groups.Keys {
		stats := statsFor(groups.Groups[date], partition)

		// Toda chave vem de pelo menos uma venda, então allCount nunca é zero
		series.All = append(series.All, domain.DateValue{
			Date:  date,
			Value: reduce(stats.allSum, stats.allCount),
		})

		if stats.subsetCount == 0 {
			series.Subset = append(series.Subset, nil)
			continue
		}

		series.Subset = append(series.Subset, &domain.DateValue{
			Date:  date,
			Value: reduce(stats.subsetSum, stats.subsetCount),
		})
	}

	return series
}

// WindowThreshold retorna o limite inferior (exclusivo) da janela
func WindowThreshold(months int, now time.Time) time.Time {
	return now.AddDate(0, -months, 0)
}

// FilterByWindow aplica a janela de datas sobre as vendas.
// Todo o período devolve a entrada sem alterações; uma janela de n meses mantém apenas
// as vendas estritamente posteriores a now - n meses. Janela customizada sem valor positivo não filtra.
func FilterByWindow(records []domain.SalesRecord, window domain.DateWindow, now time.Time) ([]domain.SalesRecord, error) {
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window.Selector)
	}

	months, ok := window.Months()
	if !ok {
		return records, nil
	}

	threshold := WindowThreshold(months, now)

	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Time.After(threshold) {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

// WindowTotals soma os valores de todas as vendas e do subconjunto
func WindowTotals(records []domain.SalesRecord, partition domain.Partition) domain.WindowTotals {
	stats := statsFor(records, partition)
	return domain.WindowTotals{
		All:    stats.allSum,
		Subset: stats.subsetSum,
	}
}

// ChannelTotals separa o total de vendas entre loja física e online
func ChannelTotals(records []domain.SalesRecord) domain.ChannelTotals {
	totals := WindowTotals(records, domain.PartitionInStore)
	return domain.ChannelTotals{
		InStore: totals.Subset,
		Online:  totals.All - totals.Subset,
	}
}

// AverageTicketSizes calcula o ticket médio de todos os clientes e dos clientes fidelidade
func AverageTicketSizes(records []domain.SalesRecord) domain.AverageTicketSizes {
	stats := statsFor(records, domain.PartitionLoyalty)

	averages := domain.AverageTicketSizes{}
	if stats.allCount > 0 {
		averages.AllCustomersAverageTicketSize = stats.allSum / float64(stats.allCount)
	}
	if stats.subsetCount > 0 {
		averages.LoyaltyAverageTicketSize = stats.subsetSum / float64(stats.subsetCount)
	}

	return averages
}

// DateBounds retorna a data da primeira e da última venda.
// O dataset precisa estar ordenado por data para que sejam o mínimo e o máximo.
func DateBounds(records []domain.SalesRecord) (time.Time, time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return records[0].Time, records[len(records)-1].Time, true
}

// Aggregate reúne datas, séries por data e totais do período em um único resultado
func Aggregate(records []domain.SalesRecord, metric domain.AggregateMetric, partition domain.Partition) domain.AggregateResult {
	var series domain.DateSeries
	if metric == domain.MetricTotal {
		series = TotalPerDate(records, partition)
	} else {
		metric = domain.MetricAverage
		series = AveragePerDate(records, partition)
	}

	return domain.AggregateResult{
		Metric:    metric,
		Partition: partition,
		Dates:     UniqueDatesInOrder(records),
		Series:    series,
		Totals:    WindowTotals(records, partition),
	}
}
