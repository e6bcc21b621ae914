package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

func EvaluateCampaign(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("campaign_id", id).Info("campaigns: evaluating campaign")

		result, err := service.EvaluateCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrEvaluationFailed, "Não foi possível avaliar a campanha")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetRecommendationStats(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		stats, err := service.GetRecommendationStats(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao consultar estatísticas de recomendações")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

type createCampaignBody struct {
	domain.CreateCampaignRequest
	dateRangeBody
}

type updateCampaignBody struct {
	domain.UpdateCampaignRequest
	dateRangeBody
}

func CreateCampaign(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("campaigns: creating campaign")

		var body createCampaignBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		start, end, err := body.dateRangeBody.parse()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
			return
		}

		request := body.CreateCampaignRequest
		request.StartDate = start
		request.EndDate = end

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	})
}

func ListCampaigns(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.CampaignFilter{EcosystemID: query.Get("ecosystem_id")}
		for _, status := range queryValues(query, "status") {
			filter.Statuses = append(filter.Statuses, domain.CampaignStatus(status))
		}

		campaigns, err := service.ListCampaigns(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

func GetCampaign(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func UpdateCampaign(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("campaign_id", id).Info("campaigns: updating campaign")

		var body updateCampaignBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		start, end, err := body.dateRangeBody.parse()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
			return
		}

		request := body.UpdateCampaignRequest
		request.ID = id
		request.StartDate = start
		request.EndDate = end

		campaign, err := service.UpdateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func DeleteCampaign(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("campaign_id", id).Info("campaigns: deleting campaign")

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCampaignPublications(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var statuses []domain.PublicationStatus
		for _, status := range queryValues(r.URL.Query(), "status") {
			statuses = append(statuses, domain.PublicationStatus(status))
		}

		publications, err := service.ListPublications(r.Context(), id, statuses)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao listar publicações")
			return
		}

		writeJSON(w, http.StatusOK, publications)
	})
}
