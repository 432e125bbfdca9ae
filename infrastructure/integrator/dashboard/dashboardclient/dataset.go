package dashboardclient

import (
	"context"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnexpectedStatus = errors.New("resposta inesperada da API de dashboard")

// GetDataset busca GET <base>/api/<nome>
func (c *DashboardClient) GetDataset(ctx context.Context, name string) (*domain.RawDataset, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "status %s", resp.Status)
	}

	var dataset domain.RawDataset
	if err := json.NewDecoder(resp.Body).Decode(&dataset); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &dataset, nil
}
