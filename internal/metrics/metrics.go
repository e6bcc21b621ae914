package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "decision_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Decision engine metrics
	PublicationEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_publication_evaluations_total",
			Help: "Total number of publication evaluations",
		},
		[]string{"outcome"}, // outcome: evaluated, no_metrics, failed
	)

	RulesTriggeredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_rules_triggered_total",
			Help: "Total number of rules that triggered on a snapshot",
		},
		[]string{"metric", "action"},
	)

	RecommendationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_recommendations_created_total",
			Help: "Total number of recommendations created",
		},
		[]string{"severity"},
	)

	RecommendationsDeduplicatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "decision_recommendations_deduplicated_total",
			Help: "Total number of triggered rules skipped because an unresolved recommendation already exists",
		},
	)

	RecommendationsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "decision_recommendations_resolved_total",
			Help: "Total number of resolve operations",
		},
	)

	CampaignEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "decision_campaign_evaluation_duration_seconds",
			Help:    "Time spent evaluating all active publications of a campaign",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Scheduler metrics
	SchedulerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_scheduler_runs_total",
			Help: "Total number of scheduled campaign evaluation runs",
		},
		[]string{"status"}, // status: success, failed, skipped
	)
)
