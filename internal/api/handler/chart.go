package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetChart monta o estado do gráfico para a janela pedida em ?window=&custom=
func GetChart(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := httprouter.ParamsFromContext(r.Context())

		name := params.ByName("dataset")
		kind := domain.ChartKind(params.ByName("kind"))

		window, err := domain.ParseDateWindow(r.URL.Query().Get("window"), r.URL.Query().Get("custom"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"dataset": name,
			"kind":    kind,
			"window":  window.String(),
		}).Debug("charts: montando gráfico")

		state, err := service.Render(name, kind, window)
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		writeJSON(w, logger, state)
	})
}
