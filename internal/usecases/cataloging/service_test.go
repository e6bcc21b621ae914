package cataloging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/usecases/deciding"
	"github.com/vfg2006/performance-decision-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	campaignRepo       *mocks.MockCampaignRepository
	publicationRepo    *mocks.MockPublicationRepository
	metricRepo         *mocks.MockMetricSnapshotRepository
	recommendationRepo *mocks.MockRecommendationRepository
}

var fixedNow = time.Date(2024, 7, 10, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		campaignRepo:       mocks.NewMockCampaignRepository(ctrl),
		publicationRepo:    mocks.NewMockPublicationRepository(ctrl),
		metricRepo:         mocks.NewMockMetricSnapshotRepository(ctrl),
		recommendationRepo: mocks.NewMockRecommendationRepository(ctrl),
	}

	service := NewService(m.campaignRepo, m.publicationRepo, m.metricRepo, m.recommendationRepo).(*Service)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func assertDecisionCode(t *testing.T, err error, code string) {
	t.Helper()

	var decisionErr *deciding.DecisionError
	require.True(t, errors.As(err, &decisionErr), "erro esperado do tipo DecisionError: %v", err)
	assert.Equal(t, code, decisionErr.Code)
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestService_CreateCampaign(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func(m *serviceMocks)
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "cria campanha como rascunho",
			request: &domain.CreateCampaignRequest{EcosystemID: "eco-1", Name: "Lançamento", StartDate: &start, EndDate: &end, TotalBudget: 5000},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().CreateCampaign(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, campaign *domain.Campaign) error {
					assert.NotEmpty(t, campaign.ID)
					assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
					return nil
				})
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Lançamento", campaign.Name)
				assert.Equal(t, "eco-1", campaign.EcosystemID)
				assert.Equal(t, fixedNow, campaign.CreatedAt)
				assert.Zero(t, campaign.SpentBudget)
			},
		},
		{
			name:    "nome obrigatório",
			request: &domain.CreateCampaignRequest{TotalBudget: 10},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assertDecisionCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "orçamento negativo",
			request: &domain.CreateCampaignRequest{Name: "X", TotalBudget: -1},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
			},
		},
		{
			name:    "data final antes da inicial",
			request: &domain.CreateCampaignRequest{Name: "X", StartDate: &end, EndDate: &start},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
		{
			name:    "falha no repositório",
			request: &domain.CreateCampaignRequest{Name: "X"},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().CreateCampaign(ctx, gomock.Any()).Return(errors.New("database down"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "database down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			campaign, err := service.CreateCampaign(ctx, tt.request)
			tt.validate(t, campaign, err)
		})
	}
}

func TestService_GetCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna campanha com publicações", func(t *testing.T) {
		service, m := newTestService(t)
		campaign := &domain.Campaign{ID: "camp-1", Name: "Campanha"}
		publications := []*domain.Publication{{ID: "pub-1", CampaignID: "camp-1"}}

		m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(campaign, nil)
		m.publicationRepo.EXPECT().ListByCampaignID(ctx, "camp-1", nil).Return(publications, nil)

		details, err := service.GetCampaign(ctx, "camp-1")
		require.NoError(t, err)
		assert.Equal(t, "Campanha", details.Name)
		assert.Equal(t, publications, details.Publications)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.campaignRepo.EXPECT().GetCampaignByID(ctx, "missing").Return(nil, nil)

		details, err := service.GetCampaign(ctx, "missing")
		assert.Nil(t, details)
		assertDecisionCode(t, err, apiErrors.ErrCampaignNotFound)
	})
}

func TestService_ListCampaigns(t *testing.T) {
	ctx := context.Background()

	t.Run("repassa o filtro", func(t *testing.T) {
		service, m := newTestService(t)
		filter := domain.CampaignFilter{EcosystemID: "eco-1", Statuses: []domain.CampaignStatus{domain.CampaignStatusActive}}
		m.campaignRepo.EXPECT().ListCampaigns(ctx, filter).Return([]*domain.Campaign{{ID: "camp-1"}}, nil)

		campaigns, err := service.ListCampaigns(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, campaigns, 1)
	})

	t.Run("status inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ListCampaigns(ctx, domain.CampaignFilter{Statuses: []domain.CampaignStatus{"running"}})
		assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
	})
}

func TestService_UpdateCampaign(t *testing.T) {
	ctx := context.Background()
	paused := domain.CampaignStatusPaused
	invalid := domain.CampaignStatus("running")

	tests := []struct {
		name     string
		request  *domain.UpdateCampaignRequest
		setup    func(m *serviceMocks)
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "altera status e orçamento informados",
			request: &domain.UpdateCampaignRequest{ID: "camp-1", Status: &paused, SpentBudget: floatPtr(120)},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(&domain.Campaign{ID: "camp-1", Name: "Campanha", Status: domain.CampaignStatusActive, TotalBudget: 1000}, nil)
				m.campaignRepo.EXPECT().UpdateCampaign(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
				assert.Equal(t, "Campanha", campaign.Name)
				assert.InDelta(t, 1000, campaign.TotalBudget, 1e-9)
				assert.InDelta(t, 120, campaign.SpentBudget, 1e-9)
				assert.Equal(t, fixedNow, campaign.UpdatedAt)
			},
		},
		{
			name:    "status inválido",
			request: &domain.UpdateCampaignRequest{ID: "camp-1", Status: &invalid},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(&domain.Campaign{ID: "camp-1"}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
			},
		},
		{
			name:    "nome vazio",
			request: &domain.UpdateCampaignRequest{ID: "camp-1", Name: stringPtr("")},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(&domain.Campaign{ID: "camp-1"}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertDecisionCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "campanha inexistente",
			request: &domain.UpdateCampaignRequest{ID: "missing"},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "missing").Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertDecisionCode(t, err, apiErrors.ErrCampaignNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			campaign, err := service.UpdateCampaign(ctx, tt.request)
			tt.validate(t, campaign, err)
		})
	}
}

func TestService_DeleteCampaign(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		setup    func(m *serviceMocks)
		wantCode string
	}{
		{
			name: "remove campanha existente",
			id:   "camp-1",
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().DeleteCampaign(ctx, "camp-1").Return(true, nil)
			},
		},
		{
			name: "campanha inexistente",
			id:   "missing",
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().DeleteCampaign(ctx, "missing").Return(false, nil)
			},
			wantCode: apiErrors.ErrCampaignNotFound,
		},
		{
			name:     "ID obrigatório",
			setup:    func(m *serviceMocks) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			err := service.DeleteCampaign(ctx, tt.id)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			assertDecisionCode(t, err, tt.wantCode)
		})
	}
}

func TestService_CreatePublication(t *testing.T) {
	ctx := context.Background()
	campaign := &domain.Campaign{ID: "camp-1", Name: "Campanha"}
	rootID := "pub-root"

	tests := []struct {
		name     string
		request  *domain.CreatePublicationRequest
		setup    func(m *serviceMocks)
		validate func(t *testing.T, publication *domain.Publication, err error)
	}{
		{
			name:    "cria publicação ativa na versão 1",
			request: &domain.CreatePublicationRequest{CampaignID: "camp-1", Name: "Vídeo 30s", Platform: "youtube", BuyType: "cpv", Budget: 200},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(campaign, nil)
				m.publicationRepo.EXPECT().CreatePublication(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, publication.ID)
				assert.Equal(t, domain.PublicationStatusActive, publication.Status)
				assert.Equal(t, 1, publication.CreativeVersion)
				assert.Nil(t, publication.ParentID)
				assert.Equal(t, "cpv", publication.BuyType)
			},
		},
		{
			name:    "com parent_id entra na família com a próxima versão",
			request: &domain.CreatePublicationRequest{CampaignID: "camp-1", Name: "Vídeo 30s B", ParentID: stringPtr("pub-v2")},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(campaign, nil)
				m.publicationRepo.EXPECT().GetByID(ctx, "pub-v2").Return(&domain.Publication{ID: "pub-v2", CampaignID: "camp-1", ParentID: &rootID, CreativeVersion: 2}, nil)
				m.publicationRepo.EXPECT().GetMaxCreativeVersion(ctx, rootID).Return(3, nil)
				m.publicationRepo.EXPECT().CreatePublication(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				require.NoError(t, err)
				assert.Equal(t, 4, publication.CreativeVersion)
				require.NotNil(t, publication.ParentID)
				assert.Equal(t, rootID, *publication.ParentID)
			},
		},
		{
			name:    "parent de outra campanha",
			request: &domain.CreatePublicationRequest{CampaignID: "camp-1", Name: "X", ParentID: stringPtr("pub-other")},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(campaign, nil)
				m.publicationRepo.EXPECT().GetByID(ctx, "pub-other").Return(&domain.Publication{ID: "pub-other", CampaignID: "camp-2"}, nil)
			},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				assertDecisionCode(t, err, apiErrors.ErrInvalidRequest)
			},
		},
		{
			name:    "campanha inexistente",
			request: &domain.CreatePublicationRequest{CampaignID: "missing", Name: "X"},
			setup: func(m *serviceMocks) {
				m.campaignRepo.EXPECT().GetCampaignByID(ctx, "missing").Return(nil, nil)
			},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				assert.Nil(t, publication)
				assertDecisionCode(t, err, apiErrors.ErrCampaignNotFound)
			},
		},
		{
			name:    "campaign_id obrigatório",
			request: &domain.CreatePublicationRequest{Name: "X"},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				assertDecisionCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "orçamento negativo",
			request: &domain.CreatePublicationRequest{CampaignID: "camp-1", Name: "X", Budget: -5},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, publication *domain.Publication, err error) {
				assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			publication, err := service.CreatePublication(ctx, tt.request)
			tt.validate(t, publication, err)
		})
	}
}

func TestService_GetPublication(t *testing.T) {
	ctx := context.Background()

	t.Run("inclui o snapshot mais recente e recomendações ativas", func(t *testing.T) {
		service, m := newTestService(t)
		snapshot := &domain.MetricSnapshot{ID: "m-1", PublicationID: "pub-1"}
		recommendations := []*domain.Recommendation{{ID: "rec-1", PublicationID: "pub-1"}}

		m.publicationRepo.EXPECT().GetByID(ctx, "pub-1").Return(&domain.Publication{ID: "pub-1", Name: "Vídeo"}, nil)
		m.metricRepo.EXPECT().GetLatestByPublicationID(ctx, "pub-1").Return(snapshot, nil)
		m.recommendationRepo.EXPECT().ListByPublicationID(ctx, "pub-1", false).Return(recommendations, nil)

		details, err := service.GetPublication(ctx, "pub-1")
		require.NoError(t, err)
		assert.Equal(t, "Vídeo", details.Name)
		assert.Equal(t, snapshot, details.LatestMetrics)
		assert.Equal(t, recommendations, details.Recommendations)
	})

	t.Run("publicação inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.publicationRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := service.GetPublication(ctx, "missing")
		assertDecisionCode(t, err, apiErrors.ErrPublicationNotFound)
	})
}

func TestService_ListPublications(t *testing.T) {
	ctx := context.Background()
	statuses := []domain.PublicationStatus{domain.PublicationStatusActive}

	t.Run("lista publicações da campanha", func(t *testing.T) {
		service, m := newTestService(t)
		m.campaignRepo.EXPECT().GetCampaignByID(ctx, "camp-1").Return(&domain.Campaign{ID: "camp-1"}, nil)
		m.publicationRepo.EXPECT().ListByCampaignID(ctx, "camp-1", statuses).Return([]*domain.Publication{{ID: "pub-1"}}, nil)

		publications, err := service.ListPublications(ctx, "camp-1", statuses)
		require.NoError(t, err)
		assert.Len(t, publications, 1)
	})

	t.Run("status inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ListPublications(ctx, "camp-1", []domain.PublicationStatus{"deleted"})
		assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
	})
}

func TestService_UpdatePublication(t *testing.T) {
	ctx := context.Background()
	archived := domain.PublicationStatusArchived
	rootID := "pub-root"

	t.Run("altera apenas os campos informados", func(t *testing.T) {
		service, m := newTestService(t)
		stored := &domain.Publication{ID: "pub-2", Name: "Vídeo", Status: domain.PublicationStatusActive, Platform: "youtube", CreativeVersion: 2, ParentID: &rootID}

		m.publicationRepo.EXPECT().GetByID(ctx, "pub-2").Return(stored, nil)
		m.publicationRepo.EXPECT().UpdatePublication(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, publication *domain.Publication) error {
			assert.Equal(t, domain.PublicationStatusArchived, publication.Status)
			assert.Equal(t, "cpm", publication.BuyType)
			return nil
		})

		publication, err := service.UpdatePublication(ctx, &domain.UpdatePublicationRequest{ID: "pub-2", Status: &archived, BuyType: stringPtr("cpm")})
		require.NoError(t, err)
		assert.Equal(t, "Vídeo", publication.Name)
		assert.Equal(t, "youtube", publication.Platform)
		assert.Equal(t, 2, publication.CreativeVersion)
		assert.Equal(t, &rootID, publication.ParentID)
		assert.Equal(t, fixedNow, publication.UpdatedAt)
	})

	t.Run("status inválido", func(t *testing.T) {
		service, m := newTestService(t)
		invalid := domain.PublicationStatus("deleted")
		m.publicationRepo.EXPECT().GetByID(ctx, "pub-1").Return(&domain.Publication{ID: "pub-1"}, nil)

		_, err := service.UpdatePublication(ctx, &domain.UpdatePublicationRequest{ID: "pub-1", Status: &invalid})
		assertDecisionCode(t, err, apiErrors.ErrInvalidFormat)
	})

	t.Run("publicação inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.publicationRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := service.UpdatePublication(ctx, &domain.UpdatePublicationRequest{ID: "missing"})
		assertDecisionCode(t, err, apiErrors.ErrPublicationNotFound)
	})
}

func TestService_DeletePublication(t *testing.T) {
	ctx := context.Background()

	t.Run("remove publicação existente", func(t *testing.T) {
		service, m := newTestService(t)
		m.publicationRepo.EXPECT().DeletePublication(ctx, "pub-1").Return(true, nil)

		require.NoError(t, service.DeletePublication(ctx, "pub-1"))
	})

	t.Run("publicação inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.publicationRepo.EXPECT().DeletePublication(ctx, "missing").Return(false, nil)

		err := service.DeletePublication(ctx, "missing")
		assertDecisionCode(t, err, apiErrors.ErrPublicationNotFound)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		service, m := newTestService(t)
		m.publicationRepo.EXPECT().DeletePublication(ctx, "pub-1").Return(false, errors.New("database down"))

		err := service.DeletePublication(ctx, "pub-1")
		require.Error(t, err)
		var decisionErr *deciding.DecisionError
		assert.False(t, errors.As(err, &decisionErr))
	})
}
