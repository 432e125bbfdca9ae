package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	writeJSONWithStatus(w, logger, http.StatusOK, payload)
}

func writeJSONWithStatus(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.WithField("error", err.Error()).Error("handler: falha ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.WithField("error", err.Error()).Warn("handler: falha ao escrever resposta")
	}
}
