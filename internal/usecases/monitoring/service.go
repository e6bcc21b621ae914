package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/utils"
)

type PerformanceService interface {
	RecordMetrics(ctx context.Context, publicationID string, request *domain.RecordMetricsRequest) (*domain.PerformanceUpdate, error)
	CreateCreativeVersion(ctx context.Context, publicationID string) (*domain.Publication, error)
}

type Service struct {
	publicationRepo repository.PublicationRepository
	metricRepo      repository.MetricSnapshotRepository
	decisionEngine  deciding.DecisionEngine
	now             func() time.Time
}

func NewService(
	publicationRepo repository.PublicationRepository,
	metricRepo repository.MetricSnapshotRepository,
	decisionEngine deciding.DecisionEngine,
) PerformanceService {
	return &Service{
		publicationRepo: publicationRepo,
		metricRepo:      metricRepo,
		decisionEngine:  decisionEngine,
		now:             time.Now,
	}
}

// RecordMetrics grava um snapshot com as métricas derivadas e avalia a publicação em seguida
func (s *Service) RecordMetrics(ctx context.Context, publicationID string, request *domain.RecordMetricsRequest) (*domain.PerformanceUpdate, error) {
	if request == nil {
		return nil, deciding.NewDecisionError(ErrMetricsRequired, apiErrors.ErrMissingRequiredData, publicationID, "")
	}

	if request.Impressions < 0 || request.Views < 0 || request.Clicks < 0 || request.Conversions < 0 || request.Spend < 0 {
		return nil, deciding.NewDecisionError(ErrNegativeMetric, apiErrors.ErrInvalidFormat, publicationID, "")
	}

	publication, err := s.getPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	snapshot := &domain.MetricSnapshot{
		ID:            utils.GenerateUUID(),
		PublicationID: publication.ID,
		MetricDate:    now,
		Impressions:   request.Impressions,
		Views:         request.Views,
		Clicks:        request.Clicks,
		Conversions:   request.Conversions,
		Spend:         request.Spend,
		Revenue:       request.Revenue,
		CreatedAt:     now,
	}
	if request.MetricDate != nil && !request.MetricDate.IsZero() {
		snapshot.MetricDate = *request.MetricDate
	}
	snapshot.CalculateDerivedMetrics()

	if err := s.metricRepo.Save(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar métricas")
	}

	logrus.WithFields(logrus.Fields{
		"publication_id": publication.ID,
		"metric_date":    snapshot.MetricDate.Format(time.DateOnly),
	}).Info("Métricas registradas")

	evaluation, err := s.decisionEngine.EvaluatePublication(ctx, publication.ID)
	if err != nil {
		return nil, errors.Wrap(err, "métricas registradas mas a avaliação falhou")
	}

	return &domain.PerformanceUpdate{
		Metrics:    snapshot,
		Evaluation: evaluation,
	}, nil
}

// CreateCreativeVersion cria uma nova versão criativa e pausa a publicação de origem
func (s *Service) CreateCreativeVersion(ctx context.Context, publicationID string) (*domain.Publication, error) {
	original, err := s.getPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	rootID := original.RootID()

	maxVersion, err := s.publicationRepo.GetMaxCreativeVersion(ctx, rootID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar versão criativa")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da publicação")
	}

	nextVersion := maxVersion + 1
	now := s.now()

	version := *original
	version.ID = id
	version.Name = fmt.Sprintf("%s - v%d", original.Name, nextVersion)
	version.Status = domain.PublicationStatusActive
	version.CreativeVersion = nextVersion
	version.ParentID = &rootID
	version.CreatedAt = now
	version.UpdatedAt = now

	if err := s.publicationRepo.CreateVersion(ctx, &version, original.ID); err != nil {
		return nil, errors.Wrap(err, "erro ao criar versão criativa")
	}

	logrus.WithFields(logrus.Fields{
		"publication_id": original.ID,
		"version_id":     version.ID,
		"version":        nextVersion,
	}).Info("Nova versão criativa criada")

	return &version, nil
}

func (s *Service) getPublication(ctx context.Context, publicationID string) (*domain.Publication, error) {
	if publicationID == "" {
		return nil, deciding.NewDecisionError(deciding.ErrPublicationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar publicação")
	}

	if publication == nil {
		return nil, deciding.NewDecisionError(deciding.ErrPublicationNotFound, apiErrors.ErrPublicationNotFound, publicationID, "")
	}

	return publication, nil
}
