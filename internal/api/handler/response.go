package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para o envelope de erro da API.
// Erros sem código conhecido viram fallbackCode com a mensagem genérica informada.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string, fallbackMessage string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var decisionErr *deciding.DecisionError
	if errors.As(err, &decisionErr) {
		if apiErrors.StatusFor(decisionErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallbackMessage)
		} else {
			logger.Warn(decisionErr.Error())
		}

		var details any
		if decisionErr.EntityID != "" {
			details = map[string]string{"id": decisionErr.EntityID}
		}
		apiErrors.WriteError(w, decisionErr.Code, decisionErr.Error(), details)
		return
	}

	logger.Error(fallbackMessage)
	apiErrors.WriteError(w, fallbackCode, fallbackMessage, nil)
}
