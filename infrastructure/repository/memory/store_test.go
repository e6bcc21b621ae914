package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

func TestStore_Create_DeduplicatesUnresolved(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	first := &domain.Recommendation{ID: "rec-1", PublicationID: "pub-1", RuleID: "rule-1", Severity: domain.SeverityHigh}
	second := &domain.Recommendation{ID: "rec-2", PublicationID: "pub-1", RuleID: "rule-1", Severity: domain.SeverityCritical}

	created, err := store.Create(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Create(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	found, err := store.Resolve(ctx, "rec-1", time.Now())
	require.NoError(t, err)
	assert.True(t, found)

	created, err = store.Create(ctx, second)
	require.NoError(t, err)
	assert.True(t, created, "após resolver, uma nova recomendação pode ser criada")
}

func TestStore_Resolve_UnknownID(t *testing.T) {
	found, err := NewStore().Resolve(context.Background(), "missing", time.Now())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_GetLatestByPublicationID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	latest, err := store.GetLatestByPublicationID(ctx, "pub-1")
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, &domain.MetricSnapshot{ID: "m-2", PublicationID: "pub-1", MetricDate: base.AddDate(0, 0, 2)}))
	require.NoError(t, store.Save(ctx, &domain.MetricSnapshot{ID: "m-1", PublicationID: "pub-1", MetricDate: base}))

	latest, err = store.GetLatestByPublicationID(ctx, "pub-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "m-2", latest.ID)
}

func TestStore_ListByPublicationID_Ordering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	recs := []*domain.Recommendation{
		{ID: "low-new", PublicationID: "pub-1", RuleID: "r1", Severity: domain.SeverityLow, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "critical-old", PublicationID: "pub-1", RuleID: "r2", Severity: domain.SeverityCritical, CreatedAt: base},
		{ID: "high", PublicationID: "pub-1", RuleID: "r3", Severity: domain.SeverityHigh, CreatedAt: base.Add(time.Hour)},
		{ID: "critical-new", PublicationID: "pub-1", RuleID: "r4", Severity: domain.SeverityCritical, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, rec := range recs {
		_, err := store.Create(ctx, rec)
		require.NoError(t, err)
	}
	_, err := store.Resolve(ctx, "high", base.Add(4*time.Hour))
	require.NoError(t, err)

	unresolved, err := store.ListByPublicationID(ctx, "pub-1", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"critical-new", "critical-old", "low-new"}, ids(unresolved))

	all, err := store.ListByPublicationID(ctx, "pub-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"low-new", "critical-new", "high", "critical-old"}, ids(all))
}

func TestStore_CreateVersion(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.AddPublication(&domain.Publication{ID: "pub-1", Status: domain.PublicationStatusActive, CreativeVersion: 1})

	rootID := "pub-1"
	err := store.CreateVersion(ctx, &domain.Publication{ID: "pub-2", ParentID: &rootID, CreativeVersion: 2, Status: domain.PublicationStatusActive}, "pub-1")
	require.NoError(t, err)

	maxVersion, err := store.GetMaxCreativeVersion(ctx, rootID)
	require.NoError(t, err)
	assert.Equal(t, 2, maxVersion)

	original, err := store.GetByID(ctx, "pub-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PublicationStatusPaused, original.Status)
}

func TestStore_SeedRules(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.SeedRules([]*domain.Rule{
		{Name: "b", Priority: 2, IsActive: true},
		{Name: "a", Priority: 1, IsActive: false},
		{Name: "c", Priority: 1, IsActive: true},
	}))

	active, err := store.ListActiveRules(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "c", active[0].Name)
	assert.Equal(t, "b", active[1].Name)
	assert.NotEmpty(t, active[0].ID)

	all, err := store.ListRules(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func ids(recommendations []*domain.Recommendation) []string {
	result := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		result = append(result, recommendation.ID)
	}
	return result
}

func TestStore_DeletePublication_Cascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	rootID := "pub-1"

	require.NoError(t, store.CreatePublication(ctx, &domain.Publication{ID: rootID, CampaignID: "camp-1", Status: domain.PublicationStatusActive, CreativeVersion: 1}))
	require.NoError(t, store.CreatePublication(ctx, &domain.Publication{ID: "pub-2", CampaignID: "camp-1", ParentID: &rootID, Status: domain.PublicationStatusActive, CreativeVersion: 2}))
	require.NoError(t, store.Save(ctx, &domain.MetricSnapshot{ID: "m-1", PublicationID: rootID, MetricDate: time.Now()}))
	_, err := store.Create(ctx, &domain.Recommendation{ID: "rec-1", PublicationID: rootID, RuleID: "rule-1"})
	require.NoError(t, err)

	deleted, err := store.DeletePublication(ctx, rootID)
	require.NoError(t, err)
	assert.True(t, deleted)

	latest, err := store.GetLatestByPublicationID(ctx, rootID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	recommendations, err := store.ListByPublicationID(ctx, rootID, true)
	require.NoError(t, err)
	assert.Empty(t, recommendations)

	child, err := store.GetByID(ctx, "pub-2")
	require.NoError(t, err)
	assert.Nil(t, child.ParentID)

	deleted, err = store.DeletePublication(ctx, rootID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_UpdatePublication_KeepsVersionFamily(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	rootID := "pub-1"
	require.NoError(t, store.CreatePublication(ctx, &domain.Publication{ID: "pub-2", CampaignID: "camp-1", ParentID: &rootID, CreativeVersion: 2, Status: domain.PublicationStatusActive}))

	require.NoError(t, store.UpdatePublication(ctx, &domain.Publication{ID: "pub-2", Name: "Renomeada", Status: domain.PublicationStatusPaused, CreativeVersion: 9}))

	stored, err := store.GetByID(ctx, "pub-2")
	require.NoError(t, err)
	assert.Equal(t, "Renomeada", stored.Name)
	assert.Equal(t, domain.PublicationStatusPaused, stored.Status)
	assert.Equal(t, 2, stored.CreativeVersion)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, rootID, *stored.ParentID)
}

func TestStore_ListCampaigns_Filter(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.CreateCampaign(ctx, &domain.Campaign{ID: "c-1", EcosystemID: "eco-1", Name: "Beta", Status: domain.CampaignStatusActive}))
	require.NoError(t, store.CreateCampaign(ctx, &domain.Campaign{ID: "c-2", EcosystemID: "eco-1", Name: "Alfa", Status: domain.CampaignStatusDraft}))
	require.NoError(t, store.CreateCampaign(ctx, &domain.Campaign{ID: "c-3", EcosystemID: "eco-2", Name: "Gama", Status: domain.CampaignStatusActive}))

	tests := []struct {
		name     string
		filter   domain.CampaignFilter
		expected []string
	}{
		{name: "sem filtro ordena por nome", expected: []string{"c-2", "c-1", "c-3"}},
		{name: "por ecossistema", filter: domain.CampaignFilter{EcosystemID: "eco-1"}, expected: []string{"c-2", "c-1"}},
		{name: "por status", filter: domain.CampaignFilter{Statuses: []domain.CampaignStatus{domain.CampaignStatusActive}}, expected: []string{"c-1", "c-3"}},
		{name: "combinado", filter: domain.CampaignFilter{EcosystemID: "eco-2", Statuses: []domain.CampaignStatus{domain.CampaignStatusDraft}}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaigns, err := store.ListCampaigns(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(campaigns))
			for _, campaign := range campaigns {
				ids = append(ids, campaign.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestStore_DeleteCampaign_RemovesPublications(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.CreateCampaign(ctx, &domain.Campaign{ID: "camp-1", Name: "Campanha"}))
	require.NoError(t, store.CreatePublication(ctx, &domain.Publication{ID: "pub-1", CampaignID: "camp-1"}))
	require.NoError(t, store.CreatePublication(ctx, &domain.Publication{ID: "pub-other", CampaignID: "camp-2"}))

	deleted, err := store.DeleteCampaign(ctx, "camp-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	campaign, err := store.GetCampaignByID(ctx, "camp-1")
	require.NoError(t, err)
	assert.Nil(t, campaign)

	publications, err := store.ListByCampaignID(ctx, "camp-1", nil)
	require.NoError(t, err)
	assert.Empty(t, publications)

	other, err := store.GetByID(ctx, "pub-other")
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestStore_GetLatestByPublicationID_SameDayUsesTimeOfDay(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	morning := time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 10, 18, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.MetricSnapshot{ID: "evening", PublicationID: "pub-1", MetricDate: evening}))
	require.NoError(t, store.Save(ctx, &domain.MetricSnapshot{ID: "morning", PublicationID: "pub-1", MetricDate: morning}))

	latest, err := store.GetLatestByPublicationID(ctx, "pub-1")
	require.NoError(t, err)
	assert.Equal(t, "evening", latest.ID)
	assert.Equal(t, evening, latest.MetricDate)
}
