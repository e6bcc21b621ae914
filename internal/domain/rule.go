package domain

import "time"

type Operator string

const (
	OperatorLessThan       Operator = "<"
	OperatorLessOrEqual    Operator = "<="
	OperatorGreaterThan    Operator = ">"
	OperatorGreaterOrEqual Operator = ">="
	OperatorEqual          Operator = "=="
	OperatorEqualAlias     Operator = "="
	OperatorNotEqual       Operator = "!="
)

type Action string

const (
	ActionChangeCreative    Action = "change_creative"
	ActionOptimizeTargeting Action = "optimize_targeting"
	ActionReduceBudget      Action = "reduce_budget"
	ActionReviewStrategy    Action = "review_strategy"
	ActionChangeFormat      Action = "change_format"
	ActionAdjustBid         Action = "adjust_bid"
	ActionScaleBudget       Action = "scale_budget"
	ActionDuplicateCampaign Action = "duplicate_campaign"
	ActionTestAB            Action = "test_ab"
	ActionExpandAudience    Action = "expand_audience"
	ActionPausePublication  Action = "pause_publication"
)

// DefaultActionDescription é usada quando o código da ação não está mapeado
const DefaultActionDescription = "Review and optimize"

var actionDescriptions = map[Action]string{
	ActionChangeCreative:    "Change the creative for one that better captures attention",
	ActionOptimizeTargeting: "Optimize audience targeting: review demographics, interests and behaviors",
	ActionReduceBudget:      "Reduce the daily budget or pause the publication until it is optimized",
	ActionReviewStrategy:    "Review the whole strategy: objective, audience, message and channel",
	ActionChangeFormat:      "Change the publication format (e.g. image to video, carousel to stories)",
	ActionAdjustBid:         "Adjust the bidding strategy (manual, automatic, CPC, CPM)",
	ActionScaleBudget:       "Increase the budget to maximize the results of this successful publication",
	ActionDuplicateCampaign: "Duplicate this successful campaign to expand reach keeping the winning formula",
	ActionTestAB:            "Create A/B test variations to validate improvements",
	ActionExpandAudience:    "Expand the audience to similar segments (lookalike)",
	ActionPausePublication:  "Pause temporarily until improvements are implemented",
}

// Description retorna a descrição da ação e se o código é conhecido
func (a Action) Description() (string, bool) {
	description, ok := actionDescriptions[a]
	if !ok {
		return DefaultActionDescription, false
	}
	return description, true
}

// CriticalPriority é a classe de regras mais severa
const CriticalPriority = 1

// Rule é uma condição de threshold sobre uma métrica mapeada para uma ação corretiva
type Rule struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Metric      Metric    `json:"metric"`
	Operator    Operator  `json:"operator"`
	Threshold   float64   `json:"threshold"`
	Action      Action    `json:"action"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Rule) IsCritical() bool {
	return r.Priority == CriticalPriority
}

type UpdateRuleRequest struct {
	ID        string   `json:"id"`
	Threshold *float64 `json:"threshold,omitempty"`
	Priority  *int     `json:"priority,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}
