package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

const activeRulesCacheKey = "active_rules"

// cachedRuleRepository mantém as regras ativas em memória por um TTL.
// Qualquer atualização de regra invalida o cache.
type cachedRuleRepository struct {
	RuleRepository
	cache *cache.Cache
}

// NewCachedRuleRepository envolve o repositório informado com cache de regras ativas.
// Um ttl igual a zero desabilita o cache e retorna o próprio repositório.
func NewCachedRuleRepository(inner RuleRepository, ttl time.Duration) RuleRepository {
	if ttl <= 0 {
		return inner
	}

	return &cachedRuleRepository{
		RuleRepository: inner,
		cache:          cache.New(ttl, 2*ttl),
	}
}

func (r *cachedRuleRepository) ListActiveRules(ctx context.Context) ([]*domain.Rule, error) {
	if cached, found := r.cache.Get(activeRulesCacheKey); found {
		return cloneRules(cached.([]*domain.Rule)), nil
	}

	rules, err := r.RuleRepository.ListActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.SetDefault(activeRulesCacheKey, cloneRules(rules))
	logrus.WithField("rules", len(rules)).Debug("Regras ativas carregadas no cache")

	return rules, nil
}

func (r *cachedRuleRepository) UpdateRule(ctx context.Context, rule *domain.Rule) error {
	err := r.RuleRepository.UpdateRule(ctx, rule)
	r.cache.Delete(activeRulesCacheKey)
	return err
}

// cloneRules evita que chamadores alterem as regras guardadas no cache
func cloneRules(rules []*domain.Rule) []*domain.Rule {
	cloned := make([]*domain.Rule, 0, len(rules))
	for _, rule := range rules {
		copied := *rule
		cloned = append(cloned, &copied)
	}
	return cloned
}
