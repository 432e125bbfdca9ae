package ingesting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetSource define a origem de onde os datasets brutos são lidos
type DatasetSource interface {
	// Fetch busca o dataset bruto pelo nome (AreaChart, BarChart, PieChart)
	Fetch(ctx context.Context, name string) (*domain.RawDataset, error)
}

// DatasetLister é implementado por origens que sabem quais datasets possuem (Postgres)
type DatasetLister interface {
	ListDatasets(ctx context.Context) ([]string, error)
}

// Loader carrega datasets da origem e publica novos snapshots
type Loader interface {
	Load(ctx context.Context, name string) (*domain.Dataset, error)
	LoadAll(ctx context.Context, names []string) error
}
