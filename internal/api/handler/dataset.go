package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetRawDataset serve o documento do dataset em /api/<nome>, no formato consumido pelo dashboard
func GetRawDataset(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		name := httprouter.ParamsFromContext(r.Context()).ByName("dataset")

		raw, err := service.RawDataset(name)
		if err != nil {
			logger.WithField("dataset", name).Warn("datasets: dataset não carregado")
			writeChartError(w, logger, err)
			return
		}

		writeJSON(w, logger, raw)
	})
}

// ListDatasets lista os snapshots carregados
func ListDatasets(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), service.Datasets())
	})
}
