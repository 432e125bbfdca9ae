package dashboardclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	GetDataset(ctx context.Context, name string) (*domain.RawDataset, error)
}

type DashboardClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API de dashboard remota
func NewClient(cfg config.Remote) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &DashboardClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.URL,
	}
}
