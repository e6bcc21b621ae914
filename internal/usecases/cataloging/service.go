package cataloging

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"github.com/vfg2006/performance-decision-api/pkg/utils"
)

// Cataloger mantém o cadastro de campanhas e publicações avaliadas pelo motor de decisão
type Cataloger interface {
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.CampaignDetails, error)
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID string) error

	CreatePublication(ctx context.Context, request *domain.CreatePublicationRequest) (*domain.Publication, error)
	GetPublication(ctx context.Context, publicationID string) (*domain.PublicationDetails, error)
	ListPublications(ctx context.Context, campaignID string, statuses []domain.PublicationStatus) ([]*domain.Publication, error)
	UpdatePublication(ctx context.Context, request *domain.UpdatePublicationRequest) (*domain.Publication, error)
	DeletePublication(ctx context.Context, publicationID string) error
}

type Service struct {
	campaignRepo       repository.CampaignRepository
	publicationRepo    repository.PublicationRepository
	metricRepo         repository.MetricSnapshotRepository
	recommendationRepo repository.RecommendationRepository
	now                func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	publicationRepo repository.PublicationRepository,
	metricRepo repository.MetricSnapshotRepository,
	recommendationRepo repository.RecommendationRepository,
) Cataloger {
	return &Service{
		campaignRepo:       campaignRepo,
		publicationRepo:    publicationRepo,
		metricRepo:         metricRepo,
		recommendationRepo: recommendationRepo,
		now:                time.Now,
	}
}

// Campanhas

// CreateCampaign cadastra a campanha como rascunho
func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if request == nil || request.Name == "" {
		return nil, deciding.NewDecisionError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if err := validateBudget(request.TotalBudget, ""); err != nil {
		return nil, err
	}

	if err := validateDateRange(request.StartDate, request.EndDate, ""); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da campanha")
	}

	now := s.now()
	campaign := &domain.Campaign{
		ID:          id,
		EcosystemID: request.EcosystemID,
		Name:        request.Name,
		Status:      domain.CampaignStatusDraft,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		TotalBudget: request.TotalBudget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "erro ao criar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":  campaign.ID,
		"ecosystem_id": campaign.EcosystemID,
	}).Info("Campanha criada")

	return campaign, nil
}

// GetCampaign retorna a campanha com todas as suas publicações
func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.CampaignDetails, error) {
	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	publications, err := s.publicationRepo.ListByCampaignID(ctx, campaign.ID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar publicações da campanha")
	}

	return &domain.CampaignDetails{
		Campaign:     campaign,
		Publications: publications,
	}, nil
}

func (s *Service) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, deciding.NewDecisionError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "", string(status))
		}
	}

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}

	return campaigns, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if request == nil {
		return nil, deciding.NewDecisionError(deciding.ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaign, err := s.getCampaign(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		if *request.Name == "" {
			return nil, deciding.NewDecisionError(ErrNameRequired, apiErrors.ErrMissingRequiredData, campaign.ID, "")
		}
		campaign.Name = *request.Name
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, deciding.NewDecisionError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, campaign.ID, string(*request.Status))
		}
		campaign.Status = *request.Status
	}

	if request.StartDate != nil {
		campaign.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		campaign.EndDate = request.EndDate
	}
	if err := validateDateRange(campaign.StartDate, campaign.EndDate, campaign.ID); err != nil {
		return nil, err
	}

	if request.TotalBudget != nil {
		if err := validateBudget(*request.TotalBudget, campaign.ID); err != nil {
			return nil, err
		}
		campaign.TotalBudget = *request.TotalBudget
	}
	if request.SpentBudget != nil {
		if err := validateBudget(*request.SpentBudget, campaign.ID); err != nil {
			return nil, err
		}
		campaign.SpentBudget = *request.SpentBudget
	}

	campaign.UpdatedAt = s.now()

	if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"status":      campaign.Status,
	}).Info("Campanha atualizada")

	return campaign, nil
}

// DeleteCampaign remove a campanha e, em cascata, suas publicações, métricas e recomendações
func (s *Service) DeleteCampaign(ctx context.Context, campaignID string) error {
	if campaignID == "" {
		return deciding.NewDecisionError(deciding.ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	deleted, err := s.campaignRepo.DeleteCampaign(ctx, campaignID)
	if err != nil {
		return errors.Wrap(err, "erro ao remover campanha")
	}

	if !deleted {
		return deciding.NewDecisionError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	logrus.WithField("campaign_id", campaignID).Info("Campanha removida")

	return nil
}

// Publicações

// CreatePublication cadastra uma publicação ativa. Quando parent_id é informado a
// publicação entra na família de criativos do pai com a próxima versão.
func (s *Service) CreatePublication(ctx context.Context, request *domain.CreatePublicationRequest) (*domain.Publication, error) {
	if request == nil || request.CampaignID == "" {
		return nil, deciding.NewDecisionError(deciding.ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if request.Name == "" {
		return nil, deciding.NewDecisionError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	if err := validateBudget(request.Budget, ""); err != nil {
		return nil, err
	}

	if err := validateDateRange(request.StartDate, request.EndDate, ""); err != nil {
		return nil, err
	}

	campaign, err := s.getCampaign(ctx, request.CampaignID)
	if err != nil {
		return nil, err
	}

	creativeVersion := 1
	var parentID *string
	if request.ParentID != nil && *request.ParentID != "" {
		parent, err := s.getPublication(ctx, *request.ParentID)
		if err != nil {
			return nil, err
		}

		if parent.CampaignID != campaign.ID {
			return nil, deciding.NewDecisionError(ErrParentNotInFamily, apiErrors.ErrInvalidRequest, parent.ID, "")
		}

		rootID := parent.RootID()
		maxVersion, err := s.publicationRepo.GetMaxCreativeVersion(ctx, rootID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar versão criativa")
		}

		creativeVersion = maxVersion + 1
		parentID = &rootID
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da publicação")
	}

	now := s.now()
	publication := &domain.Publication{
		ID:              id,
		CampaignID:      campaign.ID,
		ContentPieceID:  request.ContentPieceID,
		Name:            request.Name,
		Status:          domain.PublicationStatusActive,
		Platform:        request.Platform,
		Format:          request.Format,
		BuyType:         request.BuyType,
		Duration:        request.Duration,
		Objective:       request.Objective,
		Budget:          request.Budget,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		CreativeVersion: creativeVersion,
		ParentID:        parentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.publicationRepo.CreatePublication(ctx, publication); err != nil {
		return nil, errors.Wrap(err, "erro ao criar publicação")
	}

	logrus.WithFields(logrus.Fields{
		"publication_id": publication.ID,
		"campaign_id":    campaign.ID,
		"version":        creativeVersion,
	}).Info("Publicação criada")

	return publication, nil
}

// GetPublication retorna a publicação com o snapshot mais recente e as recomendações ativas
func (s *Service) GetPublication(ctx context.Context, publicationID string) (*domain.PublicationDetails, error) {
	publication, err := s.getPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	latest, err := s.metricRepo.GetLatestByPublicationID(ctx, publication.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas")
	}

	recommendations, err := s.recommendationRepo.ListByPublicationID(ctx, publication.ID, false)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar recomendações")
	}

	return &domain.PublicationDetails{
		Publication:     publication,
		LatestMetrics:   latest,
		Recommendations: recommendations,
	}, nil
}

func (s *Service) ListPublications(ctx context.Context, campaignID string, statuses []domain.PublicationStatus) ([]*domain.Publication, error) {
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, deciding.NewDecisionError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, campaignID, string(status))
		}
	}

	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	publications, err := s.publicationRepo.ListByCampaignID(ctx, campaign.ID, statuses)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar publicações")
	}

	return publications, nil
}

func (s *Service) UpdatePublication(ctx context.Context, request *domain.UpdatePublicationRequest) (*domain.Publication, error) {
	if request == nil {
		return nil, deciding.NewDecisionError(deciding.ErrPublicationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	publication, err := s.getPublication(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		if *request.Name == "" {
			return nil, deciding.NewDecisionError(ErrNameRequired, apiErrors.ErrMissingRequiredData, publication.ID, "")
		}
		publication.Name = *request.Name
	}

	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, deciding.NewDecisionError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, publication.ID, string(*request.Status))
		}
		publication.Status = *request.Status
	}

	if request.Platform != nil {
		publication.Platform = *request.Platform
	}
	if request.Format != nil {
		publication.Format = *request.Format
	}
	if request.BuyType != nil {
		publication.BuyType = *request.BuyType
	}
	if request.Duration != nil {
		publication.Duration = request.Duration
	}
	if request.Objective != nil {
		publication.Objective = *request.Objective
	}

	if request.Budget != nil {
		if err := validateBudget(*request.Budget, publication.ID); err != nil {
			return nil, err
		}
		publication.Budget = *request.Budget
	}

	if request.StartDate != nil {
		publication.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		publication.EndDate = request.EndDate
	}
	if err := validateDateRange(publication.StartDate, publication.EndDate, publication.ID); err != nil {
		return nil, err
	}

	publication.UpdatedAt = s.now()

	if err := s.publicationRepo.UpdatePublication(ctx, publication); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar publicação")
	}

	logrus.WithFields(logrus.Fields{
		"publication_id": publication.ID,
		"status":         publication.Status,
	}).Info("Publicação atualizada")

	return publication, nil
}

// DeletePublication remove a publicação com suas métricas e recomendações
func (s *Service) DeletePublication(ctx context.Context, publicationID string) error {
	if publicationID == "" {
		return deciding.NewDecisionError(deciding.ErrPublicationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	deleted, err := s.publicationRepo.DeletePublication(ctx, publicationID)
	if err != nil {
		return errors.Wrap(err, "erro ao remover publicação")
	}

	if !deleted {
		return deciding.NewDecisionError(deciding.ErrPublicationNotFound, apiErrors.ErrPublicationNotFound, publicationID, "")
	}

	logrus.WithField("publication_id", publicationID).Info("Publicação removida")

	return nil
}

func (s *Service) getCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if campaignID == "" {
		return nil, deciding.NewDecisionError(deciding.ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaign, err := s.campaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}

	if campaign == nil {
		return nil, deciding.NewDecisionError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
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

func validateBudget(budget float64, entityID string) error {
	if budget < 0 {
		return deciding.NewDecisionError(ErrNegativeBudget, apiErrors.ErrInvalidFormat, entityID, "")
	}
	return nil
}

func validateDateRange(start, end *time.Time, entityID string) error {
	if start != nil && end != nil && end.Before(*start) {
		return deciding.NewDecisionError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, entityID, "")
	}
	return nil
}
