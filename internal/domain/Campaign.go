package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Campaign struct {
	ID          string         `json:"id"`
	EcosystemID string         `json:"ecosystem_id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	TotalBudget float64        `json:"total_budget"`
	SpentBudget float64        `json:"spent_budget"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsValid indica se o status pertence ao ciclo de vida da campanha
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// CampaignFilter restringe a listagem de campanhas. Campos vazios não filtram.
type CampaignFilter struct {
	EcosystemID string
	Statuses    []CampaignStatus
}

// CreateCampaignRequest são os dados de cadastro de uma campanha. As datas são
// interpretadas pela camada HTTP.
type CreateCampaignRequest struct {
	EcosystemID string     `json:"ecosystem_id"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"-"`
	EndDate     *time.Time `json:"-"`
	TotalBudget float64    `json:"total_budget"`
}

// UpdateCampaignRequest altera apenas os campos informados
type UpdateCampaignRequest struct {
	ID          string          `json:"id"`
	Name        *string         `json:"name,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
	StartDate   *time.Time      `json:"-"`
	EndDate     *time.Time      `json:"-"`
	TotalBudget *float64        `json:"total_budget,omitempty"`
	SpentBudget *float64        `json:"spent_budget,omitempty"`
}

// CampaignDetails é a campanha com todas as suas publicações
type CampaignDetails struct {
	*Campaign
	Publications []*Publication `json:"publications"`
}
