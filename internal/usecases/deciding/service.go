package deciding

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/config"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/metrics"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
)

const (
	ReasonNoMetrics        = "no metrics"
	ReasonEvaluationFailed = "evaluation failed"
)

type DecisionEngine interface {
	EvaluatePublication(ctx context.Context, publicationID string) (*domain.EvaluationResult, error)
	EvaluateCampaign(ctx context.Context, campaignID string) (*domain.CampaignEvaluationResult, error)
	ResolveRecommendation(ctx context.Context, recommendationID string) error
	GetRecommendationStats(ctx context.Context, campaignID string) (*domain.RecommendationStats, error)
	ListRecommendations(ctx context.Context, publicationID string, includeResolved bool) ([]*domain.Recommendation, error)
	ListRules(ctx context.Context) ([]*domain.Rule, error)
	UpdateRule(ctx context.Context, request *domain.UpdateRuleRequest) (*domain.Rule, error)
}

type Service struct {
	ruleRepo           repository.RuleRepository
	metricRepo         repository.MetricSnapshotRepository
	recommendationRepo repository.RecommendationRepository
	publicationRepo    repository.PublicationRepository
	evaluator          Evaluator
	factory            *RecommendationFactory
	failurePolicy      string
	now                func() time.Time
}

func NewService(
	ruleRepo repository.RuleRepository,
	metricRepo repository.MetricSnapshotRepository,
	recommendationRepo repository.RecommendationRepository,
	publicationRepo repository.PublicationRepository,
	cfg config.DecisionEngine,
) DecisionEngine {
	failurePolicy := cfg.CampaignFailurePolicy
	if failurePolicy == "" {
		failurePolicy = config.FailurePolicyIsolate
	}

	return &Service{
		ruleRepo:           ruleRepo,
		metricRepo:         metricRepo,
		recommendationRepo: recommendationRepo,
		publicationRepo:    publicationRepo,
		evaluator:          Evaluator{Strict: cfg.StrictMode},
		factory:            NewRecommendationFactory(recommendationRepo, cfg.StrictMode),
		failurePolicy:      failurePolicy,
		now:                time.Now,
	}
}

// EvaluatePublication aplica todas as regras ativas ao snapshot mais recente da publicação.
// Recomendações criadas antes de uma falha não são desfeitas.
func (s *Service) EvaluatePublication(ctx context.Context, publicationID string) (*domain.EvaluationResult, error) {
	if publicationID == "" {
		return nil, NewDecisionError(ErrPublicationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	logger := logrus.WithField("publication_id", publicationID)

	snapshot, err := s.metricRepo.GetLatestByPublicationID(ctx, publicationID)
	if err != nil {
		metrics.PublicationEvaluationsTotal.WithLabelValues("failed").Inc()
		return nil, errors.Wrap(err, "erro ao buscar métricas da publicação")
	}

	if snapshot == nil {
		metrics.PublicationEvaluationsTotal.WithLabelValues("no_metrics").Inc()
		logger.Debug("Publicação sem métricas, avaliação ignorada")
		return &domain.EvaluationResult{
			Evaluated:       false,
			Reason:          ReasonNoMetrics,
			PublicationID:   publicationID,
			Recommendations: []*domain.Recommendation{},
		}, nil
	}

	rules, err := s.ruleRepo.ListActiveRules(ctx)
	if err != nil {
		metrics.PublicationEvaluationsTotal.WithLabelValues("failed").Inc()
		return nil, errors.Wrap(err, "erro ao buscar regras ativas")
	}

	recommendations := make([]*domain.Recommendation, 0)
	for _, rule := range rules {
		triggered, err := s.evaluator.Evaluate(snapshot, rule)
		if err != nil {
			metrics.PublicationEvaluationsTotal.WithLabelValues("failed").Inc()
			return nil, NewDecisionError(err, apiErrors.ErrInvalidRule, rule.ID, "")
		}

		if !triggered {
			continue
		}

		metrics.RulesTriggeredTotal.WithLabelValues(string(rule.Metric), string(rule.Action)).Inc()

		recommendation, err := s.factory.CreateRecommendation(ctx, publicationID, rule, snapshot)
		if err != nil {
			metrics.PublicationEvaluationsTotal.WithLabelValues("failed").Inc()
			if errors.Is(err, ErrUnknownAction) {
				return nil, NewDecisionError(err, apiErrors.ErrInvalidRule, rule.ID, "")
			}
			return nil, errors.Wrapf(err, "erro ao criar recomendação para a regra %s", rule.ID)
		}

		if recommendation != nil {
			recommendations = append(recommendations, recommendation)
		}
	}

	metrics.PublicationEvaluationsTotal.WithLabelValues("evaluated").Inc()
	logger.WithFields(logrus.Fields{
		"rules":                   len(rules),
		"recommendations_created": len(recommendations),
	}).Info("Publicação avaliada")

	return &domain.EvaluationResult{
		Evaluated:              true,
		PublicationID:          publicationID,
		Metrics:                snapshot,
		RecommendationsCreated: len(recommendations),
		Recommendations:        recommendations,
	}, nil
}

// EvaluateCampaign avalia sequencialmente as publicações ativas da campanha.
// Publicações pausadas ou arquivadas nunca são avaliadas.
func (s *Service) EvaluateCampaign(ctx context.Context, campaignID string) (*domain.CampaignEvaluationResult, error) {
	if campaignID == "" {
		return nil, NewDecisionError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	startTime := time.Now()
	defer func() {
		metrics.CampaignEvaluationDuration.Observe(time.Since(startTime).Seconds())
	}()

	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":    campaignID,
		"failure_policy": s.failurePolicy,
	})

	publications, err := s.publicationRepo.ListByCampaignID(ctx, campaignID, []domain.PublicationStatus{domain.PublicationStatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar publicações ativas da campanha")
	}

	result := &domain.CampaignEvaluationResult{
		CampaignID: campaignID,
		Results:    make([]*domain.EvaluationResult, 0, len(publications)),
	}

	for _, publication := range publications {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "avaliação da campanha interrompida")
		}

		evaluation, err := s.EvaluatePublication(ctx, publication.ID)
		if err != nil {
			if s.failurePolicy == config.FailurePolicyAbort {
				logger.WithError(err).WithField("publication_id", publication.ID).Error("Falha ao avaliar publicação, abortando campanha")
				return nil, errors.Wrapf(err, "erro ao avaliar publicação %s", publication.ID)
			}

			logger.WithError(err).WithField("publication_id", publication.ID).Warn("Falha ao avaliar publicação, seguindo para a próxima")
			result.FailedCount++
			result.Results = append(result.Results, &domain.EvaluationResult{
				Evaluated:       false,
				Reason:          ReasonEvaluationFailed,
				PublicationID:   publication.ID,
				Recommendations: []*domain.Recommendation{},
				Error:           err.Error(),
			})
			continue
		}

		result.EvaluatedCount++
		result.Results = append(result.Results, evaluation)
	}

	logger.WithFields(logrus.Fields{
		"evaluated": result.EvaluatedCount,
		"failed":    result.FailedCount,
	}).Info("Campanha avaliada")

	return result, nil
}

// ResolveRecommendation marca a recomendação como resolvida. Resolver novamente
// apenas atualiza o horário de resolução.
func (s *Service) ResolveRecommendation(ctx context.Context, recommendationID string) error {
	if recommendationID == "" {
		return NewDecisionError(ErrRecommendationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	found, err := s.recommendationRepo.Resolve(ctx, recommendationID, s.now())
	if err != nil {
		return errors.Wrap(err, "erro ao resolver recomendação")
	}

	if !found {
		return NewDecisionError(ErrRecommendationNotFound, apiErrors.ErrRecommendationNotFound, recommendationID, "")
	}

	metrics.RecommendationsResolvedTotal.Inc()
	logrus.WithField("recommendation_id", recommendationID).Info("Recomendação resolvida")

	return nil
}

func (s *Service) GetRecommendationStats(ctx context.Context, campaignID string) (*domain.RecommendationStats, error) {
	if campaignID == "" {
		return nil, NewDecisionError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	stats, err := s.recommendationRepo.GetStatsByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estatísticas de recomendações")
	}

	return stats, nil
}

func (s *Service) ListRecommendations(ctx context.Context, publicationID string, includeResolved bool) ([]*domain.Recommendation, error) {
	if publicationID == "" {
		return nil, NewDecisionError(ErrPublicationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	recommendations, err := s.recommendationRepo.ListByPublicationID(ctx, publicationID, includeResolved)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar recomendações")
	}

	return recommendations, nil
}

func (s *Service) ListRules(ctx context.Context) ([]*domain.Rule, error) {
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar regras")
	}

	return rules, nil
}

// UpdateRule altera threshold, prioridade e status de uma regra existente
func (s *Service) UpdateRule(ctx context.Context, request *domain.UpdateRuleRequest) (*domain.Rule, error) {
	if request == nil || request.ID == "" {
		return nil, NewDecisionError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if request.Threshold != nil && (math.IsNaN(*request.Threshold) || math.IsInf(*request.Threshold, 0)) {
		return nil, NewDecisionError(ErrInvalidThreshold, apiErrors.ErrInvalidFormat, request.ID, "")
	}

	if request.Priority != nil && *request.Priority < 1 {
		return nil, NewDecisionError(ErrInvalidPriority, apiErrors.ErrInvalidFormat, request.ID, "")
	}

	rule, err := s.ruleRepo.GetRuleByID(ctx, request.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar regra")
	}

	if rule == nil {
		return nil, NewDecisionError(ErrRuleNotFound, apiErrors.ErrRuleNotFound, request.ID, "")
	}

	if request.Threshold != nil {
		rule.Threshold = *request.Threshold
	}
	if request.Priority != nil {
		rule.Priority = *request.Priority
	}
	if request.IsActive != nil {
		rule.IsActive = *request.IsActive
	}

	if err := s.ruleRepo.UpdateRule(ctx, rule); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar regra")
	}

	rule.UpdatedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"threshold": rule.Threshold,
		"priority":  rule.Priority,
		"is_active": rule.IsActive,
	}).Info("Regra atualizada")

	return rule, nil
}
