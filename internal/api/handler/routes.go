package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/performance-decision-api/internal/api/handler/router"
	"github.com/vfg2006/performance-decision-api/internal/usecases/cataloging"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/internal/usecases/monitoring"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Publications(engine deciding.DecisionEngine, performance monitoring.PerformanceService, catalog cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/publications",
			Method:  http.MethodPost,
			Handler: CreatePublication(catalog),
		},
		{
			Path:    "/v1/publications/:id",
			Method:  http.MethodGet,
			Handler: GetPublication(catalog),
		},
		{
			Path:    "/v1/publications/:id",
			Method:  http.MethodPut,
			Handler: UpdatePublication(catalog),
		},
		{
			Path:    "/v1/publications/:id",
			Method:  http.MethodDelete,
			Handler: DeletePublication(catalog),
		},
		{
			Path:    "/v1/publications/:id/metrics",
			Method:  http.MethodPost,
			Handler: RecordMetrics(performance),
		},
		{
			Path:    "/v1/publications/:id/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluatePublication(engine),
		},
		{
			Path:    "/v1/publications/:id/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(engine),
		},
		{
			Path:    "/v1/publications/:id/new-version",
			Method:  http.MethodPost,
			Handler: CreateCreativeVersion(performance),
		},
	}
}

func Recommendations(engine deciding.DecisionEngine) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recommendations/:id/resolve",
			Method:  http.MethodPost,
			Handler: ResolveRecommendation(engine),
		},
	}
}

func Campaigns(engine deciding.DecisionEngine, catalog cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(catalog),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(catalog),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(catalog),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(catalog),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(catalog),
		},
		{
			Path:    "/v1/campaigns/:id/publications",
			Method:  http.MethodGet,
			Handler: ListCampaignPublications(catalog),
		},
		{
			Path:    "/v1/campaigns/:id/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluateCampaign(engine),
		},
		{
			Path:    "/v1/campaigns/:id/recommendations/stats",
			Method:  http.MethodGet,
			Handler: GetRecommendationStats(engine),
		},
	}
}

func Rules(engine deciding.DecisionEngine) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rules",
			Method:  http.MethodGet,
			Handler: ListRules(engine),
		},
		{
			Path:    "/v1/rules/:id",
			Method:  http.MethodPut,
			Handler: UpdateRule(engine),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
