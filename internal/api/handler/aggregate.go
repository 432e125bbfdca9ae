package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetAggregates calcula as séries por data em ?metric=&partition=&window=&custom=
func GetAggregates(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		name := httprouter.ParamsFromContext(r.Context()).ByName("dataset")
		query := r.URL.Query()

		metric := domain.AggregateMetric(query.Get("metric"))
		if metric == "" {
			metric = domain.MetricAverage
		}

		partition := domain.Partition(query.Get("partition"))
		if partition == "" {
			partition = domain.PartitionLoyalty
		}

		window, err := domain.ParseDateWindow(query.Get("window"), query.Get("custom"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), nil)
			return
		}

		result, err := service.Aggregate(name, metric, partition, window)
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		writeJSON(w, logger, result)
	})
}
