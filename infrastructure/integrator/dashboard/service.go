package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DashboardService expõe a API de dashboard remota como origem de datasets
type DashboardService struct {
	Client dashboardclient.Client
}

func New(client dashboardclient.Client) *DashboardService {
	return &DashboardService{
		Client: client,
	}
}

func (s *DashboardService) Fetch(ctx context.Context, name string) (*domain.RawDataset, error) {
	dataset, err := s.Client.GetDataset(ctx, name)
	if err != nil {
		return nil, errors.WithMessagef(err, "dashboard: dataset %s", name)
	}

	if dataset.Customers == nil {
		dataset.Customers = []domain.RawSalesRecord{}
	}

	return dataset, nil
}
