package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

func ListRules(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rules, err := service.ListRules(r.Context())
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao listar regras")
			return
		}

		writeJSON(w, http.StatusOK, rules)
	})
}

func UpdateRule(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("rule_id", id).Info("rules: updating rule")

		var request domain.UpdateRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		rule, err := service.UpdateRule(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar regra")
			return
		}

		writeJSON(w, http.StatusOK, rule)
	})
}
