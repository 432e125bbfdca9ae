package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func record(date string, amount float64, loyalty bool) domain.SalesRecord {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.SalesRecord{
		Date:            date,
		Time:            parsed,
		Amount:          amount,
		IsLoyaltyMember: loyalty,
	}
}

func inStore(r domain.SalesRecord) domain.SalesRecord {
	r.IsInStore = true
	return r
}

func exampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		record("2024-01-01", 100, false),
		record("2024-01-01", 50, true),
		record("2024-02-01", 200, false),
	}
}

func TestUniqueDatesInOrder(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		expected []string
	}{
		{
			name:     "Sem vendas - deve retornar lista vazia",
			records:  nil,
			expected: []string{},
		},
		{
			name: "Datas repetidas - deve manter a ordem da primeira ocorrência",
			records: []domain.SalesRecord{
				record("2024-03-01", 1, false),
				record("2024-01-01", 1, false),
				record("2024-03-01", 1, true),
				record("2024-02-01", 1, false),
				record("2024-01-01", 1, false),
			},
			expected: []string{"2024-03-01", "2024-01-01", "2024-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UniqueDatesInOrder(tt.records))
		})
	}
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate(exampleRecords())

	assert.Equal(t, []string{"2024-01-01", "2024-02-01"}, groups.Keys)
	assert.Len(t, groups.Groups["2024-01-01"], 2)
	assert.Len(t, groups.Groups["2024-02-01"], 1)
}

func TestAveragePerDate(t *testing.T) {
	series := AveragePerDate(exampleRecords(), domain.PartitionLoyalty)

	assert.Equal(t, []domain.DateValue{
		{Date: "2024-01-01", Value: 75},
		{Date: "2024-02-01", Value: 200},
	}, series.All)

	require.Len(t, series.Subset, 2)
	require.NotNil(t, series.Subset[0])
	assert.Equal(t, domain.DateValue{Date: "2024-01-01", Value: 50}, *series.Subset[0])
	assert.Nil(t, series.Subset[1])
}

func TestAveragePerDate_ReconstructsTotal(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-01-01", 10.5, false),
		record("2024-01-01", 20.25, true),
		record("2024-01-01", 33, true),
		record("2024-01-02", 7, false),
		record("2024-01-03", 0, true),
		record("2024-01-02", 13, false),
	}

	series := AveragePerDate(records, domain.PartitionLoyalty)
	groups := GroupByDate(records)

	for i, date := range groups.Keys {
		var sum float64
		for _, r := range groups.Groups[date] {
			sum += r.Amount
		}
		assert.InDelta(t, sum, series.All[i].Value*float64(len(groups.Groups[date])), 1e-9)
	}
}

func TestAveragePerDate_SubsetZeroAmountIsPresent(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-01-01", 0, true),
		record("2024-01-01", 40, false),
	}

	series := AveragePerDate(records, domain.PartitionLoyalty)

	require.NotNil(t, series.Subset[0])
	assert.Equal(t, 0.0, series.Subset[0].Value)
}

func TestTotalPerDate(t *testing.T) {
	tests := []struct {
		name           string
		records        []domain.SalesRecord
		expectedAll    []domain.DateValue
		expectedSubset []*domain.DateValue
	}{
		{
			name:    "Exemplo básico - deve somar por data e marcar ausência",
			records: exampleRecords(),
			expectedAll: []domain.DateValue{
				{Date: "2024-01-01", Value: 150},
				{Date: "2024-02-01", Value: 200},
			},
			expectedSubset: []*domain.DateValue{
				{Date: "2024-01-01", Value: 50},
				nil,
			},
		},
		{
			name: "Subconjunto somando zero - deve retornar zero e não ausência",
			records: []domain.SalesRecord{
				record("2024-01-01", 10, false),
				record("2024-01-01", 0, true),
			},
			expectedAll: []domain.DateValue{
				{Date: "2024-01-01", Value: 10},
			},
			expectedSubset: []*domain.DateValue{
				{Date: "2024-01-01", Value: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := TotalPerDate(tt.records, domain.PartitionLoyalty)
			assert.Equal(t, tt.expectedAll, series.All)
			assert.Equal(t, tt.expectedSubset, series.Subset)
		})
	}
}

func TestTotalPerDate_InStorePartition(t *testing.T) {
	records := []domain.SalesRecord{
		inStore(record("2024-01-01", 30, false)),
		record("2024-01-01", 20, true),
		record("2024-01-02", 5, true),
	}

	series := TotalPerDate(records, domain.PartitionInStore)

	require.NotNil(t, series.Subset[0])
	assert.Equal(t, 30.0, series.Subset[0].Value)
	assert.Nil(t, series.Subset[1])
}

func TestFilterByWindow(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	threshold := record("2024-02-15", 10, false)
	dayAfter := record("2024-02-16", 20, false)
	older := record("2023-12-01", 30, true)
	records := []domain.SalesRecord{older, threshold, dayAfter}

	tests := []struct {
		name     string
		window   domain.DateWindow
		expected []domain.SalesRecord
	}{
		{
			name:     "Todo o período - deve retornar a entrada sem alterações",
			window:   domain.AllTime(),
			expected: records,
		},
		{
			name:     "Últimos 3 meses - deve excluir a data exata do limite",
			window:   domain.LastMonths(3),
			expected: []domain.SalesRecord{dayAfter},
		},
		{
			name:     "Customizado 6 meses - deve incluir todas as vendas",
			window:   domain.CustomMonths(6),
			expected: records,
		},
		{
			name:     "Customizado sem valor positivo - não deve filtrar",
			window:   domain.CustomMonths(0),
			expected: records,
		},
		{
			name:     "Preset zero - deve manter apenas vendas futuras",
			window:   domain.LastMonths(0),
			expected: []domain.SalesRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := FilterByWindow(records, tt.window, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filtered)
		})
	}
}

func TestFilterByWindow_AllTimeIsIdentity(t *testing.T) {
	records := exampleRecords()

	filtered, err := FilterByWindow(records, domain.AllTime(), time.Now())
	require.NoError(t, err)

	assert.Same(t, &records[0], &filtered[0])
}

func TestFilterByWindow_InvalidSelector(t *testing.T) {
	_, err := FilterByWindow(exampleRecords(), domain.DateWindow{Selector: -3}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestWindowTotals(t *testing.T) {
	assert.Equal(t, domain.WindowTotals{All: 350, Subset: 50}, WindowTotals(exampleRecords(), domain.PartitionLoyalty))
	assert.Equal(t, domain.WindowTotals{}, WindowTotals(nil, domain.PartitionLoyalty))
}

func TestChannelTotals(t *testing.T) {
	records := []domain.SalesRecord{
		inStore(record("2024-01-01", 30, false)),
		record("2024-01-01", 20, true),
		inStore(record("2024-01-02", 5, true)),
	}

	assert.Equal(t, domain.ChannelTotals{InStore: 35, Online: 20}, ChannelTotals(records))
}

func TestAverageTicketSizes(t *testing.T) {
	averages := AverageTicketSizes(exampleRecords())

	assert.InDelta(t, 350.0/3.0, averages.AllCustomersAverageTicketSize, 1e-9)
	assert.Equal(t, 50.0, averages.LoyaltyAverageTicketSize)
	assert.Equal(t, domain.AverageTicketSizes{}, AverageTicketSizes(nil))
}

func TestDateBounds(t *testing.T) {
	start, end, ok := DateBounds(exampleRecords())
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", start.Format(time.DateOnly))
	assert.Equal(t, "2024-02-01", end.Format(time.DateOnly))

	_, _, ok = DateBounds(nil)
	assert.False(t, ok)
}

func TestAggregate(t *testing.T) {
	result := Aggregate(exampleRecords(), domain.MetricAverage, domain.PartitionLoyalty)

	assert.Equal(t, domain.MetricAverage, result.Metric)
	assert.Equal(t, []string{"2024-01-01", "2024-02-01"}, result.Dates)
	assert.Equal(t, domain.WindowTotals{All: 350, Subset: 50}, result.Totals)
	assert.Len(t, result.Series.All, 2)

	empty := Aggregate(nil, domain.MetricTotal, domain.PartitionLoyalty)
	assert.Empty(t, empty.Dates)
	assert.Equal(t, domain.WindowTotals{}, empty.Totals)
}
