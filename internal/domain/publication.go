package domain

import "time"

type PublicationStatus string

const (
	PublicationStatusActive   PublicationStatus = "active"
	PublicationStatusPaused   PublicationStatus = "paused"
	PublicationStatusArchived PublicationStatus = "archived"
)

// Publication é uma peça de conteúdo veiculada dentro de uma campanha
type Publication struct {
	ID              string            `json:"id"`
	CampaignID      string            `json:"campaign_id"`
	ContentPieceID  *string           `json:"content_piece_id"`
	Name            string            `json:"name"`
	Status          PublicationStatus `json:"status"`
	Platform        string            `json:"platform"`
	Format          string            `json:"format"`
	BuyType         string            `json:"buy_type"`
	Duration        *int              `json:"duration"`
	Objective       string            `json:"objective"`
	Budget          float64           `json:"budget"`
	StartDate       *time.Time        `json:"start_date"`
	EndDate         *time.Time        `json:"end_date"`
	CreativeVersion int               `json:"creative_version"`
	ParentID        *string           `json:"parent_id"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// RootID retorna o ID da publicação original da família de criativos
func (p *Publication) RootID() string {
	if p.ParentID != nil && *p.ParentID != "" {
		return *p.ParentID
	}
	return p.ID
}

// IsValid indica se o status pertence ao ciclo de vida da publicação
func (s PublicationStatus) IsValid() bool {
	switch s {
	case PublicationStatusActive, PublicationStatusPaused, PublicationStatusArchived:
		return true
	}
	return false
}

// CreatePublicationRequest são os dados de cadastro de uma publicação. As datas são
// interpretadas pela camada HTTP.
type CreatePublicationRequest struct {
	CampaignID     string     `json:"campaign_id"`
	ContentPieceID *string    `json:"content_piece_id,omitempty"`
	Name           string     `json:"name"`
	Platform       string     `json:"platform"`
	Format         string     `json:"format"`
	BuyType        string     `json:"buy_type"`
	Duration       *int       `json:"duration,omitempty"`
	Objective      string     `json:"objective"`
	Budget         float64    `json:"budget"`
	StartDate      *time.Time `json:"-"`
	EndDate        *time.Time `json:"-"`
	ParentID       *string    `json:"parent_id,omitempty"`
}

// UpdatePublicationRequest altera apenas os campos informados
type UpdatePublicationRequest struct {
	ID        string             `json:"id"`
	Name      *string            `json:"name,omitempty"`
	Status    *PublicationStatus `json:"status,omitempty"`
	Platform  *string            `json:"platform,omitempty"`
	Format    *string            `json:"format,omitempty"`
	BuyType   *string            `json:"buy_type,omitempty"`
	Duration  *int               `json:"duration,omitempty"`
	Objective *string            `json:"objective,omitempty"`
	Budget    *float64           `json:"budget,omitempty"`
	StartDate *time.Time         `json:"-"`
	EndDate   *time.Time         `json:"-"`
}

// PublicationDetails é a publicação com o snapshot mais recente e as recomendações ativas
type PublicationDetails struct {
	*Publication
	LatestMetrics   *MetricSnapshot   `json:"latest_metrics"`
	Recommendations []*Recommendation `json:"recommendations"`
}
