package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func HealthcheckHandler(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"datasets": len(service.Datasets()),
		})
	})
}
