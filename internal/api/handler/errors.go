package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// writeChartError traduz erros de gráficos e agregações para a resposta padronizada
func writeChartError(w http.ResponseWriter, logger log.Logger, err error) {
	var details any
	var chartErr *charting.ChartError
	if errors.As(err, &chartErr) && chartErr.Dataset != "" {
		details = map[string]string{"dataset": chartErr.Dataset}
	}

	switch {
	case errors.Is(err, charting.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado", details)
	case errors.Is(err, charting.ErrInvalidKind):
		apiErrors.WriteError(w, apiErrors.ErrInvalidChartKind, err.Error(), details)
	case errors.Is(err, charting.ErrInvalidPreset), errors.Is(err, aggregating.ErrInvalidWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, err.Error(), details)
	case errors.Is(err, charting.ErrInvalidMetric), errors.Is(err, charting.ErrInvalidPartition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAggregate, err.Error(), details)
	default:
		logger.WithField("error", err.Error()).Error("handler: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
