package domain

// AggregateMetric define o tipo de agregação por data
type AggregateMetric string

const (
	MetricAverage AggregateMetric = "average"
	MetricTotal   AggregateMetric = "total"
)

func (m AggregateMetric) IsValid() bool {
	return m == MetricAverage || m == MetricTotal
}

// DateValue é o valor agregado de uma data
type DateValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DateSeries contém uma entrada por data para todas as vendas e para o subconjunto.
// Uma entrada nil no subconjunto significa ausência de registros, nunca zero.
type DateSeries struct {
	All    []DateValue  `json:"all"`
	Subset []*DateValue `json:"subset"`
}

// WindowTotals são as somas de todo o período filtrado
type WindowTotals struct {
	All    float64 `json:"all"`
	Subset float64 `json:"subset"`
}

// ChannelTotals separa as vendas entre loja física e online
type ChannelTotals struct {
	InStore float64 `json:"in_store"`
	Online  float64 `json:"online"`
}

// AggregateResult é calculado a cada chamada e não deve ser alterado depois de retornado
type AggregateResult struct {
	Metric    AggregateMetric `json:"metric"`
	Partition Partition       `json:"partition"`
	Dates     []string        `json:"dates"`
	Series    DateSeries      `json:"series"`
	Totals    WindowTotals    `json:"totals"`
}
