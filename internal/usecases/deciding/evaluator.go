package deciding

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

// EvaluateRule aplica a regra ao snapshot. Métrica ausente ou operador desconhecido
// nunca disparam a regra.
func EvaluateRule(snapshot *domain.MetricSnapshot, rule *domain.Rule) bool {
	triggered, _ := Evaluator{}.Evaluate(snapshot, rule)
	return triggered
}

// Evaluator avalia regras contra snapshots de métricas. Em modo estrito, operadores e
// métricas desconhecidos retornam erro em vez de simplesmente não disparar.
type Evaluator struct {
	Strict bool
}

func (e Evaluator) Evaluate(snapshot *domain.MetricSnapshot, rule *domain.Rule) (bool, error) {
	if rule == nil {
		return false, nil
	}

	if e.Strict && !rule.Metric.IsKnown() {
		return false, errors.Wrapf(ErrUnknownMetric, "regra %s: %q", rule.ID, rule.Metric)
	}

	value, ok := snapshot.Value(rule.Metric)
	if !ok {
		return false, nil
	}

	triggered, known := compare(rule.Operator, value, rule.Threshold)
	if !known && e.Strict {
		return false, errors.Wrapf(ErrUnknownOperator, "regra %s: %q", rule.ID, rule.Operator)
	}

	return triggered, nil
}

func compare(operator domain.Operator, value, threshold float64) (triggered bool, known bool) {
	switch operator {
	case domain.OperatorLessThan:
		return value < threshold, true
	case domain.OperatorLessOrEqual:
		return value <= threshold, true
	case domain.OperatorGreaterThan:
		return value > threshold, true
	case domain.OperatorGreaterOrEqual:
		return value >= threshold, true
	case domain.OperatorEqual, domain.OperatorEqualAlias:
		return value == threshold, true
	case domain.OperatorNotEqual:
		return value != threshold, true
	default:
		return false, false
	}
}
