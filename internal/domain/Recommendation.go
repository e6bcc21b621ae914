package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

var severityRanks = map[Severity]int{
	SeverityCritical: 1,
	SeverityHigh:     2,
	SeverityMedium:   3,
	SeverityLow:      4,
}

// Rank retorna a posição da severidade na ordenação (1 = mais severa)
func (s Severity) Rank() int {
	if rank, ok := severityRanks[s]; ok {
		return rank
	}
	return len(severityRanks) + 1
}

// Recommendation é o resultado de uma regra disparada para uma publicação.
// Ciclo de vida: não resolvida -> resolvida (terminal).
type Recommendation struct {
	ID              string     `json:"id"`
	PublicationID   string     `json:"publication_id"`
	RuleID          string     `json:"rule_id"`
	Severity        Severity   `json:"severity"`
	Message         string     `json:"message"`
	ActionRequired  string     `json:"action_required"`
	IsResolved      bool       `json:"is_resolved"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	RuleName        string     `json:"rule_name,omitempty"`
	RuleDescription string     `json:"rule_description,omitempty"`
}

// RecommendationStats agrega recomendações de uma campanha. As contagens por
// severidade consideram apenas recomendações não resolvidas.
type RecommendationStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// EvaluationResult é o resultado da avaliação de uma publicação
type EvaluationResult struct {
	Evaluated              bool              `json:"evaluated"`
	Reason                 string            `json:"reason,omitempty"`
	PublicationID          string            `json:"publication_id"`
	Metrics                *MetricSnapshot   `json:"metrics,omitempty"`
	RecommendationsCreated int               `json:"recommendations_created"`
	Recommendations        []*Recommendation `json:"recommendations"`
	Error                  string            `json:"error,omitempty"`
}

// CampaignEvaluationResult é o resultado da avaliação de todas as publicações ativas de uma campanha
type CampaignEvaluationResult struct {
	CampaignID     string              `json:"campaign_id"`
	EvaluatedCount int                 `json:"evaluated_count"`
	FailedCount    int                 `json:"failed_count"`
	Results        []*EvaluationResult `json:"results"`
}
