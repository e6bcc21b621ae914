package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/internal/usecases/monitoring"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/log"
)

// recordMetricsRequest aceita metric_date no formato YYYY-MM-DD ou RFC3339
type recordMetricsRequest struct {
	MetricDate  string   `json:"metric_date"`
	Impressions int64    `json:"impressions"`
	Views       int64    `json:"views"`
	Clicks      int64    `json:"clicks"`
	Conversions int64    `json:"conversions"`
	Spend       float64  `json:"spend"`
	Revenue     *float64 `json:"revenue"`
}

func RecordMetrics(service monitoring.PerformanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("publications: recording metrics")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da publicação é obrigatório", nil)
			return
		}

		var body recordMetricsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request := &domain.RecordMetricsRequest{
			Impressions: body.Impressions,
			Views:       body.Views,
			Clicks:      body.Clicks,
			Conversions: body.Conversions,
			Spend:       body.Spend,
			Revenue:     body.Revenue,
		}

		if body.MetricDate != "" {
			metricDate, err := parseMetricDate(body.MetricDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "metric_date inválida, use YYYY-MM-DD", nil)
				return
			}
			request.MetricDate = metricDate
		}

		update, err := service.RecordMetrics(r.Context(), id, request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Não foi possível registrar as métricas")
			return
		}

		writeJSON(w, http.StatusCreated, update)
	})
}

func EvaluatePublication(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("publication_id", id).Info("publications: evaluating publication")

		result, err := service.EvaluatePublication(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrEvaluationFailed, "Não foi possível avaliar a publicação")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ListRecommendations(service deciding.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		includeResolved := false
		if raw := r.URL.Query().Get("include_resolved"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "include_resolved deve ser true ou false", nil)
				return
			}
			includeResolved = parsed
		}

		recommendations, err := service.ListRecommendations(r.Context(), id, includeResolved)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao listar recomendações")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	})
}

func CreateCreativeVersion(service monitoring.PerformanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("publication_id", id).Info("publications: creating creative version")

		version, err := service.CreateCreativeVersion(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Não foi possível criar a nova versão")
			return
		}

		writeJSON(w, http.StatusCreated, version)
	})
}

type createPublicationBody struct {
	domain.CreatePublicationRequest
	dateRangeBody
}

type updatePublicationBody struct {
	domain.UpdatePublicationRequest
	dateRangeBody
}

func CreatePublication(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("publications: creating publication")

		var body createPublicationBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		start, end, err := body.dateRangeBody.parse()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
			return
		}

		request := body.CreatePublicationRequest
		request.StartDate = start
		request.EndDate = end

		publication, err := service.CreatePublication(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao criar publicação")
			return
		}

		writeJSON(w, http.StatusCreated, publication)
	})
}

func GetPublication(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		publication, err := service.GetPublication(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar publicação")
			return
		}

		writeJSON(w, http.StatusOK, publication)
	})
}

func UpdatePublication(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("publication_id", id).Info("publications: updating publication")

		var body updatePublicationBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		start, end, err := body.dateRangeBody.parse()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
			return
		}

		request := body.UpdatePublicationRequest
		request.ID = id
		request.StartDate = start
		request.EndDate = end

		publication, err := service.UpdatePublication(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar publicação")
			return
		}

		writeJSON(w, http.StatusOK, publication)
	})
}

func DeletePublication(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("publication_id", id).Info("publications: deleting publication")

		if err := service.DeletePublication(r.Context(), id); err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation, "Erro ao remover publicação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
