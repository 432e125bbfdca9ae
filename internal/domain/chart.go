package domain

// ChartKind identifica as variantes de gráfico do dashboard
type ChartKind string

const (
	ChartAverage ChartKind = "average"
	ChartTotal   ChartKind = "total"
	ChartChannel ChartKind = "channel"
	ChartPie     ChartKind = "pie"
	ChartBubble  ChartKind = "bubble"
)

var ChartKinds = []ChartKind{ChartAverage, ChartTotal, ChartChannel, ChartPie, ChartBubble}

func (k ChartKind) IsValid() bool {
	for _, kind := range ChartKinds {
		if kind == k {
			return true
		}
	}
	return false
}

type ChartStatus string

const (
	ChartUninitialized ChartStatus = "UNINITIALIZED"
	ChartReady         ChartStatus = "READY"
)

// ChartSeries é uma série pronta para o gráfico; valores nil são renderizados como lacuna
type ChartSeries struct {
	Label string     `json:"label"`
	Data  []*float64 `json:"data"`
}

// ChartState é o resultado imutável de cada recálculo do gráfico
type ChartState struct {
	ID         string              `json:"id"`
	Kind       ChartKind           `json:"kind"`
	Dataset    string              `json:"dataset"`
	Version    string              `json:"dataset_version"`
	Status     ChartStatus         `json:"status"`
	Revision   int                 `json:"revision"`
	Window     DateWindow          `json:"window"`
	StartLabel string              `json:"start_date"`
	EndLabel   string              `json:"end_date"`
	Labels     []string            `json:"labels"`
	Series     []ChartSeries       `json:"series"`
	Totals     WindowTotals        `json:"totals"`
	Channels   *ChannelTotals      `json:"channels,omitempty"`
	Averages   *AverageTicketSizes `json:"average_ticket_sizes,omitempty"`
}
