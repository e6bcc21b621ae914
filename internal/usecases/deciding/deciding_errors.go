package deciding

import (
	"errors"
	"fmt"
)

// Erros específicos do motor de decisão
var (
	// Erros de validação
	ErrPublicationIDRequired    = errors.New("publication ID is required")
	ErrCampaignIDRequired       = errors.New("campaign ID is required")
	ErrRecommendationIDRequired = errors.New("recommendation ID is required")
	ErrRuleIDRequired           = errors.New("rule ID is required")
	ErrInvalidThreshold         = errors.New("threshold must be a finite number")
	ErrInvalidPriority          = errors.New("priority must be greater than zero")

	// Erros de dados ausentes
	ErrPublicationNotFound    = errors.New("publication not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrRuleNotFound           = errors.New("rule not found")

	// Regras mal configuradas (apenas em modo estrito)
	ErrUnknownOperator = errors.New("unknown rule operator")
	ErrUnknownMetric   = errors.New("unknown rule metric")
	ErrUnknownAction   = errors.New("unknown rule action")
)

// DecisionError é um erro com contexto adicional do motor de decisão
type DecisionError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID da publicação, campanha, regra ou recomendação envolvida
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DecisionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DecisionError) Unwrap() error {
	return e.Err
}

// NewDecisionError cria um novo DecisionError
func NewDecisionError(err error, code string, entityID string, details string) *DecisionError {
	return &DecisionError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
