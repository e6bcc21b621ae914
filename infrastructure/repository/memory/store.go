package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/pkg/utils"
)

var (
	_ repository.RuleRepository           = (*Store)(nil)
	_ repository.MetricSnapshotRepository = (*Store)(nil)
	_ repository.RecommendationRepository = (*Store)(nil)
	_ repository.PublicationRepository    = (*Store)(nil)
	_ repository.CampaignRepository       = (*Store)(nil)
)

// Store implementa todos os repositórios em memória. Usado com DATABASE_DRIVER=memory
// e nos testes de comportamento do motor de decisão.
type Store struct {
	mu              sync.RWMutex
	rules           map[string]*domain.Rule
	snapshots       map[string][]*domain.MetricSnapshot
	recommendations map[string]*domain.Recommendation
	publications    map[string]*domain.Publication
	campaigns       map[string]*domain.Campaign
}

func NewStore() *Store {
	return &Store{
		rules:           make(map[string]*domain.Rule),
		snapshots:       make(map[string][]*domain.MetricSnapshot),
		recommendations: make(map[string]*domain.Recommendation),
		publications:    make(map[string]*domain.Publication),
		campaigns:       make(map[string]*domain.Campaign),
	}
}

func (s *Store) AddRule(rule *domain.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *rule
	s.rules[rule.ID] = &copied
}

// SeedRules insere as regras informadas, gerando IDs para as que não possuem
func (s *Store) SeedRules(rules []*domain.Rule) error {
	now := time.Now()
	for _, rule := range rules {
		if rule.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return err
			}
			rule.ID = id
		}
		if rule.CreatedAt.IsZero() {
			rule.CreatedAt = now
			rule.UpdatedAt = now
		}
		s.AddRule(rule)
	}
	return nil
}

func (s *Store) AddPublication(publication *domain.Publication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *publication
	s.publications[publication.ID] = &copied
}

func (s *Store) AddCampaign(campaign *domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *campaign
	s.campaigns[campaign.ID] = &copied
}

// Regras

func (s *Store) ListActiveRules(_ context.Context) ([]*domain.Rule, error) {
	return s.listRules(true), nil
}

func (s *Store) ListRules(_ context.Context) ([]*domain.Rule, error) {
	return s.listRules(false), nil
}

func (s *Store) listRules(onlyActive bool) []*domain.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]*domain.Rule, 0, len(s.rules))
	for _, rule := range s.rules {
		if onlyActive && !rule.IsActive {
			continue
		}
		copied := *rule
		rules = append(rules, &copied)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].Name < rules[j].Name
	})

	return rules
}

func (s *Store) GetRuleByID(_ context.Context, ruleID string) (*domain.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, ok := s.rules[ruleID]
	if !ok {
		return nil, nil
	}
	copied := *rule
	return &copied, nil
}

func (s *Store) UpdateRule(_ context.Context, rule *domain.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rules[rule.ID]
	if !ok {
		return nil
	}

	stored.Threshold = rule.Threshold
	stored.Priority = rule.Priority
	stored.IsActive = rule.IsActive
	stored.UpdatedAt = time.Now()

	return nil
}

// Métricas

func (s *Store) GetLatestByPublicationID(_ context.Context, publicationID string) (*domain.MetricSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.MetricSnapshot
	for _, snapshot := range s.snapshots[publicationID] {
		if latest == nil || !snapshot.MetricDate.Before(latest.MetricDate) {
			latest = snapshot
		}
	}

	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (s *Store) Save(_ context.Context, snapshot *domain.MetricSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *snapshot
	s.snapshots[snapshot.PublicationID] = append(s.snapshots[snapshot.PublicationID], &copied)
	return nil
}

// Recomendações

func (s *Store) GetUnresolved(_ context.Context, publicationID, ruleID string) (*domain.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if recommendation := s.findUnresolved(publicationID, ruleID); recommendation != nil {
		copied := *recommendation
		return &copied, nil
	}
	return nil, nil
}

func (s *Store) findUnresolved(publicationID, ruleID string) *domain.Recommendation {
	for _, recommendation := range s.recommendations {
		if recommendation.PublicationID == publicationID && recommendation.RuleID == ruleID && !recommendation.IsResolved {
			return recommendation
		}
	}
	return nil
}

// Create aplica a mesma restrição do índice único parcial do Postgres
func (s *Store) Create(_ context.Context, recommendation *domain.Recommendation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !recommendation.IsResolved && s.findUnresolved(recommendation.PublicationID, recommendation.RuleID) != nil {
		return false, nil
	}

	copied := *recommendation
	s.recommendations[recommendation.ID] = &copied
	return true, nil
}

func (s *Store) Resolve(_ context.Context, recommendationID string, resolvedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recommendation, ok := s.recommendations[recommendationID]
	if !ok {
		return false, nil
	}

	recommendation.IsResolved = true
	recommendation.ResolvedAt = &resolvedAt
	return true, nil
}

func (s *Store) ListByPublicationID(_ context.Context, publicationID string, includeResolved bool) ([]*domain.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recommendations := make([]*domain.Recommendation, 0)
	for _, recommendation := range s.recommendations {
		if recommendation.PublicationID != publicationID {
			continue
		}
		if !includeResolved && recommendation.IsResolved {
			continue
		}

		copied := *recommendation
		if rule, ok := s.rules[recommendation.RuleID]; ok {
			copied.RuleName = rule.Name
			copied.RuleDescription = rule.Description
		}
		recommendations = append(recommendations, &copied)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if !includeResolved && a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return recommendations, nil
}

func (s *Store) GetStatsByCampaignID(_ context.Context, campaignID string) (*domain.RecommendationStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.RecommendationStats{}
	for _, recommendation := range s.recommendations {
		publication, ok := s.publications[recommendation.PublicationID]
		if !ok || publication.CampaignID != campaignID {
			continue
		}

		stats.Total++
		if recommendation.IsResolved {
			continue
		}

		stats.Active++
		switch recommendation.Severity {
		case domain.SeverityCritical:
			stats.Critical++
		case domain.SeverityHigh:
			stats.High++
		case domain.SeverityMedium:
			stats.Medium++
		case domain.SeverityLow:
			stats.Low++
		}
	}

	return stats, nil
}

// Publicações

func (s *Store) GetByID(_ context.Context, publicationID string) (*domain.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	publication, ok := s.publications[publicationID]
	if !ok {
		return nil, nil
	}
	copied := *publication
	return &copied, nil
}

func (s *Store) ListByCampaignID(_ context.Context, campaignID string, statuses []domain.PublicationStatus) ([]*domain.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	publications := make([]*domain.Publication, 0)
	for _, publication := range s.publications {
		if publication.CampaignID != campaignID {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, publication.Status) {
			continue
		}
		copied := *publication
		publications = append(publications, &copied)
	}

	sort.SliceStable(publications, func(i, j int) bool {
		if !publications[i].CreatedAt.Equal(publications[j].CreatedAt) {
			return publications[i].CreatedAt.Before(publications[j].CreatedAt)
		}
		return publications[i].ID < publications[j].ID
	})

	return publications, nil
}

func (s *Store) GetMaxCreativeVersion(_ context.Context, rootID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxVersion := 0
	for _, publication := range s.publications {
		isFamily := publication.ID == rootID || (publication.ParentID != nil && *publication.ParentID == rootID)
		if isFamily && publication.CreativeVersion > maxVersion {
			maxVersion = publication.CreativeVersion
		}
	}

	return maxVersion, nil
}

func (s *Store) CreateVersion(_ context.Context, version *domain.Publication, originalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *version
	s.publications[version.ID] = &copied

	if original, ok := s.publications[originalID]; ok {
		original.Status = domain.PublicationStatusPaused
		original.UpdatedAt = version.CreatedAt
	}

	return nil
}

func (s *Store) CreatePublication(_ context.Context, publication *domain.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *publication
	s.publications[publication.ID] = &copied
	return nil
}

func (s *Store) UpdatePublication(_ context.Context, publication *domain.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.publications[publication.ID]
	if !ok {
		return nil
	}

	stored.Name = publication.Name
	stored.Status = publication.Status
	stored.Platform = publication.Platform
	stored.Format = publication.Format
	stored.BuyType = publication.BuyType
	stored.Duration = publication.Duration
	stored.Objective = publication.Objective
	stored.Budget = publication.Budget
	stored.StartDate = publication.StartDate
	stored.EndDate = publication.EndDate
	stored.UpdatedAt = publication.UpdatedAt

	return nil
}

// DeletePublication replica as chaves estrangeiras do Postgres: métricas e
// recomendações são removidas e as versões derivadas perdem o parent_id.
func (s *Store) DeletePublication(_ context.Context, publicationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.publications[publicationID]; !ok {
		return false, nil
	}

	s.deletePublication(publicationID)
	return true, nil
}

func (s *Store) deletePublication(publicationID string) {
	delete(s.publications, publicationID)
	delete(s.snapshots, publicationID)

	for id, recommendation := range s.recommendations {
		if recommendation.PublicationID == publicationID {
			delete(s.recommendations, id)
		}
	}

	for _, publication := range s.publications {
		if publication.ParentID != nil && *publication.ParentID == publicationID {
			publication.ParentID = nil
		}
	}
}

// Campanhas

func (s *Store) GetCampaignByID(_ context.Context, campaignID string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaign, ok := s.campaigns[campaignID]
	if !ok {
		return nil, nil
	}
	copied := *campaign
	return &copied, nil
}

func (s *Store) ListCampaigns(_ context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := make([]*domain.Campaign, 0)
	for _, campaign := range s.campaigns {
		if filter.EcosystemID != "" && campaign.EcosystemID != filter.EcosystemID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, campaign.Status) {
			continue
		}
		copied := *campaign
		campaigns = append(campaigns, &copied)
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].Name < campaigns[j].Name
	})

	return campaigns, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign *domain.Campaign) error {
	s.AddCampaign(campaign)
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.campaigns[campaign.ID]
	if !ok {
		return nil
	}

	stored.Name = campaign.Name
	stored.Status = campaign.Status
	stored.StartDate = campaign.StartDate
	stored.EndDate = campaign.EndDate
	stored.TotalBudget = campaign.TotalBudget
	stored.SpentBudget = campaign.SpentBudget
	stored.UpdatedAt = campaign.UpdatedAt

	return nil
}

// DeleteCampaign remove a campanha junto com suas publicações
func (s *Store) DeleteCampaign(_ context.Context, campaignID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[campaignID]; !ok {
		return false, nil
	}

	delete(s.campaigns, campaignID)
	for id, publication := range s.publications {
		if publication.CampaignID == campaignID {
			s.deletePublication(id)
		}
	}

	return true, nil
}
