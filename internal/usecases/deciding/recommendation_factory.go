package deciding

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/domain"
	"github.com/vfg2006/performance-decision-api/internal/metrics"
	"github.com/vfg2006/performance-decision-api/pkg/utils"
)

// Limites de divergência percentual entre o valor e o threshold
const (
	upperSeverityPct = 50.0
	lowerSeverityPct = 25.0
)

// CalculateSeverity classifica o quanto o valor divergiu do threshold. Regras de
// prioridade 1 variam entre medium e critical, as demais entre low e high.
// Threshold zero segue a aritmética IEEE: divergência positiva vai ao topo da classe.
func CalculateSeverity(rule *domain.Rule, value float64) domain.Severity {
	pct := math.Abs(value-rule.Threshold) / rule.Threshold * 100

	if rule.IsCritical() {
		switch {
		case pct > upperSeverityPct:
			return domain.SeverityCritical
		case pct > lowerSeverityPct:
			return domain.SeverityHigh
		default:
			return domain.SeverityMedium
		}
	}

	switch {
	case pct > upperSeverityPct:
		return domain.SeverityHigh
	case pct > lowerSeverityPct:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// BuildMessage gera a mensagem da recomendação, ex:
// "VTR Baixo: VTR (View Through Rate) actual es 5.00%, threshold es 10%"
func BuildMessage(rule *domain.Rule, value float64) string {
	unit := rule.Metric.Unit()
	return fmt.Sprintf("%s: %s actual es %.2f%s, threshold es %s%s",
		rule.Name,
		rule.Metric.DisplayName(),
		value,
		unit,
		strconv.FormatFloat(rule.Threshold, 'f', -1, 64),
		unit,
	)
}

// RecommendationFactory transforma regras disparadas em recomendações persistidas,
// garantindo no máximo uma recomendação não resolvida por (publicação, regra).
type RecommendationFactory struct {
	recommendationRepo repository.RecommendationRepository
	strict             bool
	now                func() time.Time
}

func NewRecommendationFactory(recommendationRepo repository.RecommendationRepository, strict bool) *RecommendationFactory {
	return &RecommendationFactory{
		recommendationRepo: recommendationRepo,
		strict:             strict,
		now:                time.Now,
	}
}

// CreateRecommendation retorna nil quando já existe uma recomendação não resolvida
// para a mesma publicação e regra. A existente não é alterada.
func (f *RecommendationFactory) CreateRecommendation(
	ctx context.Context,
	publicationID string,
	rule *domain.Rule,
	snapshot *domain.MetricSnapshot,
) (*domain.Recommendation, error) {
	value, ok := snapshot.Value(rule.Metric)
	if !ok {
		return nil, nil
	}

	actionRequired, known := rule.Action.Description()
	if !known && f.strict {
		return nil, errors.Wrapf(ErrUnknownAction, "regra %s: %q", rule.ID, rule.Action)
	}

	existing, err := f.recommendationRepo.GetUnresolved(ctx, publicationID, rule.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar recomendação não resolvida")
	}

	if existing != nil {
		metrics.RecommendationsDeduplicatedTotal.Inc()
		logrus.WithFields(logrus.Fields{
			"publication_id":    publicationID,
			"rule_id":           rule.ID,
			"recommendation_id": existing.ID,
		}).Debug("Recomendação não resolvida já existe, ignorando")
		return nil, nil
	}

	recommendation := &domain.Recommendation{
		ID:              utils.GenerateUUID(),
		PublicationID:   publicationID,
		RuleID:          rule.ID,
		Severity:        CalculateSeverity(rule, value),
		Message:         BuildMessage(rule, value),
		ActionRequired:  actionRequired,
		IsResolved:      false,
		CreatedAt:       f.now(),
		RuleName:        rule.Name,
		RuleDescription: rule.Description,
	}

	created, err := f.recommendationRepo.Create(ctx, recommendation)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar recomendação")
	}

	// Outra avaliação concorrente inseriu a mesma recomendação primeiro
	if !created {
		metrics.RecommendationsDeduplicatedTotal.Inc()
		return nil, nil
	}

	metrics.RecommendationsCreatedTotal.WithLabelValues(string(recommendation.Severity)).Inc()

	return recommendation, nil
}
