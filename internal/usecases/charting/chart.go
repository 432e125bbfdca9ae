package charting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	TotalSalesLabel        = "Total Sales"
	AverageTicketSizeLabel = "Average Ticket Size"
)

// Chart mantém o estado de um gráfico sobre um snapshot de dataset.
// Cada ação recalcula o estado inteiro e nunca altera um ChartState já devolvido.
type Chart struct {
	id      string
	kind    domain.ChartKind
	dataset *domain.Dataset
	now     time.Time
	state   domain.ChartState

	// último valor customizado aplicado; sobrevive a trocas de preset
	customMonths int
}

// Initialize leva o gráfico de UNINITIALIZED para READY usando todo o período
func Initialize(kind domain.ChartKind, dataset *domain.Dataset, now time.Time) (*Chart, error) {
	if !kind.IsValid() {
		return nil, NewChartError(ErrInvalidKind, "", string(kind))
	}
	if dataset == nil {
		return nil, NewChartError(ErrDatasetNotFound, "", "snapshot nulo")
	}

	c := &Chart{
		id:      utils.GenerateID(),
		kind:    kind,
		dataset: dataset,
		now:     now,
		state: domain.ChartState{
			Kind:    kind,
			Dataset: dataset.Name,
			Version: dataset.Version,
			Status:  domain.ChartUninitialized,
		},
	}

	if _, err := c.refresh(domain.AllTime()); err != nil {
		return nil, err
	}

	return c, nil
}

// State retorna o estado atual
func (c *Chart) State() domain.ChartState {
	return c.state
}

// SelectWindow aplica um preset de n meses (n >= 0) ou todo o período (-1).
// Selecionar o modo customizado reaproveita o último valor informado e não faz nada sem ele.
func (c *Chart) SelectWindow(preset int) (domain.ChartState, error) {
	var window domain.DateWindow
	switch {
	case preset >= 0:
		window = domain.LastMonths(preset)
	case preset == domain.WindowAllTime:
		window = domain.AllTime()
	case preset == domain.WindowCustom:
		if c.customMonths <= 0 {
			return c.state, nil
		}
		window = domain.CustomMonths(c.customMonths)
	default:
		return c.state, NewChartError(fmt.Errorf("%w: %w", ErrInvalidPreset, aggregating.ErrInvalidWindow), c.dataset.Name, fmt.Sprint(preset))
	}

	return c.refresh(window)
}

// ApplyCustomWindow aplica uma janela customizada; valores não positivos são ignorados
func (c *Chart) ApplyCustomWindow(months int) domain.ChartState {
	if months <= 0 {
		return c.state
	}

	state, err := c.refresh(domain.CustomMonths(months))
	if err != nil {
		return c.state
	}
	c.customMonths = months
	return state
}

// ResetZoom recalcula o gráfico com a janela atual
func (c *Chart) ResetZoom() (domain.ChartState, error) {
	return c.refresh(c.state.Window)
}

func (c *Chart) refresh(window domain.DateWindow) (domain.ChartState, error) {
	filtered, err := aggregating.FilterByWindow(c.dataset.Records, window, c.now)
	if err != nil {
		return c.state, NewChartError(err, c.dataset.Name, window.String())
	}

	next := domain.ChartState{
		ID:       c.id,
		Kind:     c.kind,
		Dataset:  c.dataset.Name,
		Version:  c.dataset.Version,
		Status:   domain.ChartReady,
		Revision: c.state.Revision + 1,
		Window:   window,
	}

	next.StartLabel, next.EndLabel = c.rangeLabels(filtered, window)

	switch c.kind {
	case domain.ChartAverage:
		next.Labels = aggregating.UniqueDatesInOrder(filtered)
		next.Series = customerSeries(aggregating.AveragePerDate(filtered, domain.PartitionLoyalty))
		next.Totals = aggregating.WindowTotals(filtered, domain.PartitionLoyalty)
	case domain.ChartTotal:
		next.Labels = aggregating.UniqueDatesInOrder(filtered)
		next.Series = customerSeries(aggregating.TotalPerDate(filtered, domain.PartitionLoyalty))
		next.Totals = aggregating.WindowTotals(filtered, domain.PartitionLoyalty)
	case domain.ChartChannel:
		channels := aggregating.ChannelTotals(filtered)
		next.Labels = []string{domain.InStoreLabel, domain.OnlineLabel}
		next.Series = []domain.ChartSeries{
			{Label: TotalSalesLabel, Data: values(channels.InStore, channels.Online)},
		}
		next.Totals = aggregating.WindowTotals(filtered, domain.PartitionInStore)
		next.Channels = &channels
	case domain.ChartPie, domain.ChartBubble:
		averages := c.averageTicketSizes(filtered, window)
		next.Labels = []string{domain.AllCustomersLabel, domain.LoyaltyCustomersLabel}
		next.Series = []domain.ChartSeries{
			{Label: AverageTicketSizeLabel, Data: values(averages.AllCustomersAverageTicketSize, averages.LoyaltyAverageTicketSize)},
		}
		next.Totals = aggregating.WindowTotals(filtered, domain.PartitionLoyalty)
		next.Averages = &averages
	}

	c.state = next
	return next, nil
}

// As médias pré-calculadas do dataset só valem para todo o período
func (c *Chart) averageTicketSizes(filtered []domain.SalesRecord, window domain.DateWindow) domain.AverageTicketSizes {
	if _, filtering := window.Months(); !filtering && c.dataset.AverageTicketSizes != nil {
		return *c.dataset.AverageTicketSizes
	}
	return aggregating.AverageTicketSizes(filtered)
}

func (c *Chart) rangeLabels(filtered []domain.SalesRecord, window domain.DateWindow) (string, string) {
	months, filtering := window.Months()
	if !filtering {
		start, end, ok := aggregating.DateBounds(filtered)
		if !ok {
			return "", ""
		}
		return aggregating.FormatDateRangeLabel(start, end)
	}

	_, end, ok := aggregating.DateBounds(c.dataset.Records)
	if !ok {
		return aggregating.FormatDateLabel(aggregating.WindowThreshold(months, c.now)), ""
	}
	return aggregating.FormatDateRangeLabel(aggregating.WindowThreshold(months, c.now), end)
}

func customerSeries(series domain.DateSeries) []domain.ChartSeries {
	all := make([]*float64, len(series.All))
	for i := range series.All {
		value := series.All[i].Value
		all[i] = &value
	}

	subset := make([]*float64, len(series.Subset))
	for i, entry := range series.Subset {
		if entry == nil {
			continue
		}
		value := entry.Value
		subset[i] = &value
	}

	return []domain.ChartSeries{
		{Label: domain.AllCustomersLabel, Data: all},
		{Label: domain.LoyaltyCustomersLabel, Data: subset},
	}
}

func values(vs ...float64) []*float64 {
	data := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		data[i] = &v
	}
	return data
}
