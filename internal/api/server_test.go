package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fakeCronJob struct {
	started bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	if f.started {
		return false
	}
	f.started = true
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.started}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	amount := func(v float64) *float64 { return &v }
	flag := func(v bool) *bool { return &v }

	raw := &domain.RawDataset{
		Customers: []domain.RawSalesRecord{
			{Date: "2024-01-01", TicketSize: amount(50), HasLoyalty: flag(true)},
			{Date: "2024-01-01", TicketSize: amount(100), HasLoyalty: flag(false)},
			{Date: "2024-01-02", TicketSize: amount(200), HasLoyalty: flag(false)},
		},
	}

	store := repository.NewDatasetStore()
	store.Put(&domain.Dataset{
		Name:    domain.AreaChartDataset,
		Version: "v1",
		Records: []domain.SalesRecord{
			{Date: "2024-01-01", Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 50, IsLoyaltyMember: true},
			{Date: "2024-01-01", Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 100},
			{Date: "2024-01-02", Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Amount: 200},
		},
		Raw: raw,
	})

	cfg := &config.Config{Cors: config.Cors{AllowedOrigins: []string{"*"}}}
	return NewHandler(cfg, charting.NewService(store), &fakeCronJob{})
}

func TestRoutes(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name:       "Healthcheck - deve responder ok",
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var payload map[string]any
				require.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, "ok", payload["status"])
				assert.Equal(t, 1.0, payload["datasets"])
			},
		},
		{
			name:       "Dataset bruto - deve devolver o documento do dashboard",
			method:     http.MethodGet,
			path:       "/api/AreaChart",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var raw domain.RawDataset
				require.NoError(t, json.Unmarshal(body, &raw))
				assert.Len(t, raw.Customers, 3)
			},
		},
		{
			name:       "Dataset bruto não carregado - deve retornar DATA_001",
			method:     http.MethodGet,
			path:       "/api/BarChart",
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrDatasetNotFound, apiErr.Code)
			},
		},
		{
			name:       "Lista de datasets - deve resumir snapshots",
			method:     http.MethodGet,
			path:       "/v1/datasets",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var summaries []domain.DatasetSummary
				require.NoError(t, json.Unmarshal(body, &summaries))
				require.Len(t, summaries, 1)
				assert.Equal(t, "v1", summaries[0].Version)
			},
		},
		{
			name:       "Agregação por total - deve devolver séries e totais",
			method:     http.MethodGet,
			path:       "/v1/datasets/AreaChart/aggregates?metric=total",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var result domain.AggregateResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, result.Dates)
				assert.Equal(t, domain.WindowTotals{All: 350, Subset: 50}, result.Totals)
				require.Len(t, result.Series.Subset, 2)
				assert.Nil(t, result.Series.Subset[1])
			},
		},
		{
			name:       "Agregação com métrica desconhecida - deve retornar VAL_006",
			method:     http.MethodGet,
			path:       "/v1/datasets/AreaChart/aggregates?metric=median",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Agregação com seletor inválido - deve retornar VAL_004",
			method:     http.MethodGet,
			path:       "/v1/datasets/AreaChart/aggregates?window=-7",
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidWindow, apiErr.Code)
			},
		},
		{
			name:       "Gráfico de médias - deve devolver estado READY com lacunas",
			method:     http.MethodGet,
			path:       "/v1/charts/AreaChart/average",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var state domain.ChartState
				require.NoError(t, json.Unmarshal(body, &state))
				assert.Equal(t, domain.ChartReady, state.Status)
				assert.Equal(t, "January 1 2024", state.StartLabel)
				assert.Equal(t, "January 2 2024", state.EndLabel)
				require.Len(t, state.Series, 2)
				assert.Equal(t, 75.0, *state.Series[0].Data[0])
				assert.Nil(t, state.Series[1].Data[1])
			},
		},
		{
			name:       "Gráfico de tipo desconhecido - deve retornar 400",
			method:     http.MethodGet,
			path:       "/v1/charts/AreaChart/radar",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Gráfico de dataset não carregado - deve retornar 404",
			method:     http.MethodGet,
			path:       "/v1/charts/PieChart/pie",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Cron manual - deve aceitar a execução",
			method:     http.MethodPost,
			path:       "/v1/cron/dataset-reload/run",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "Cron manual repetida - deve retornar conflito",
			method:     http.MethodPost,
			path:       "/v1/cron/dataset-reload/run",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Cron desconhecida - deve retornar 404",
			method:     http.MethodPost,
			path:       "/v1/cron/meta/run",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Rota inexistente - deve retornar HTTP_001",
			method:     http.MethodGet,
			path:       "/v2/charts",
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrRouteNotFound, apiErr.Code)
			},
		},
		{
			name:       "Método não suportado - deve retornar HTTP_002",
			method:     http.MethodDelete,
			path:       "/v1/datasets",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "Status das crons - deve listar dataset-reload",
			method:     http.MethodGet,
			path:       "/v1/cron/status",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var status map[string]map[string]any
				require.NoError(t, json.Unmarshal(body, &status))
				assert.Equal(t, true, status["dataset-reload"]["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:4200")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}
