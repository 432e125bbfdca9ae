package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobTypeDatasetReload é a única cron job exposta
const CronJobTypeDatasetReload = "dataset-reload"

// CronJob é implementado pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetReloadService CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeDatasetReload:
		return s.DatasetReloadService, s.DatasetReloadService != nil
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeDatasetReload, nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Cron job já em execução", nil)
			return
		}

		logger.Info("cron: execução manual iniciada")

		writeJSONWithStatus(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetReloadService != nil {
			status[CronJobTypeDatasetReload] = services.DatasetReloadService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	})
}
