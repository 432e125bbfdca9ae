package domain

import "time"

const (
	AreaChartDataset = "AreaChart"
	BarChartDataset  = "BarChart"
	PieChartDataset  = "PieChart"
)

// DefaultDatasetNames são os datasets servidos para o dashboard
var DefaultDatasetNames = []string{AreaChartDataset, BarChartDataset, PieChartDataset}

// AverageTicketSizes são as médias de ticket pré-calculadas usadas nos gráficos de pizza e bolhas
type AverageTicketSizes struct {
	AllCustomersAverageTicketSize float64 `json:"AllCustomersAverageTicketSize" yaml:"AllCustomersAverageTicketSize"`
	LoyaltyAverageTicketSize      float64 `json:"LoyaltyAverageTicketSize" yaml:"LoyaltyAverageTicketSize"`
}

// RawDataset é o documento servido em /api/<nome>
type RawDataset struct {
	Customers          []RawSalesRecord    `json:"customers" yaml:"customers"`
	AverageTicketSizes *AverageTicketSizes `json:"averageTicketSizes,omitempty" yaml:"averageTicketSizes,omitempty"`
}

// Dataset é um snapshot imutável de um dataset já validado
type Dataset struct {
	Name               string
	Version            string
	LoadedAt           time.Time
	Records            []SalesRecord
	AverageTicketSizes *AverageTicketSizes
	Raw                *RawDataset
}

// DatasetSummary resume um snapshot carregado
type DatasetSummary struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Records   int       `json:"records"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
}

func (d *Dataset) Summary() DatasetSummary {
	summary := DatasetSummary{
		Name:     d.Name,
		Version:  d.Version,
		Records:  len(d.Records),
		LoadedAt: d.LoadedAt,
	}

	if len(d.Records) > 0 {
		summary.StartDate = d.Records[0].Date
		summary.EndDate = d.Records[len(d.Records)-1].Date
	}

	return summary
}
