package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

func ResolveRecommendation(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("recommendation_id", id).Info("recommendations: resolving")

		if err := service.ResolveRecommendation(r.Context(), id); err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao resolver recomendação")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":          id,
			"is_resolved": true,
		})
	})
}
