package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/performance-decision-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

const (
	campaignsTable  = "campaigns c"
	campaignColumns = "c.id, c.ecosystem_id, c.name, c.status, c.start_date, c.end_date, c.total_budget, c.spent_budget, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error
	DeleteCampaign(ctx context.Context, campaignID string) (bool, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.EcosystemID != "" {
		builder = builder.Where(squirrel.Eq{"c.ecosystem_id": filter.EcosystemID})
	}

	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"c.status": filter.Statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "ecosystem_id", "name", "status", "start_date", "end_date", "total_budget", "spent_budget", "created_at", "updated_at").
		Values(
			campaign.ID,
			nullString(campaign.EcosystemID),
			campaign.Name,
			campaign.Status,
			campaign.StartDate,
			campaign.EndDate,
			campaign.TotalBudget,
			campaign.SpentBudget,
			campaign.CreatedAt,
			campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("status", campaign.Status).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("total_budget", campaign.TotalBudget).
		Set("spent_budget", campaign.SpentBudget).
		Set("updated_at", campaign.UpdatedAt).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// DeleteCampaign remove a campanha e, em cascata, suas publicações
func (r *campaignRepository) DeleteCampaign(ctx context.Context, campaignID string) (bool, error) {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var ecosystemID sql.NullString

	if err := row.Scan(
		&campaign.ID,
		&ecosystemID,
		&campaign.Name,
		&campaign.Status,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.TotalBudget,
		&campaign.SpentBudget,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.EcosystemID = ecosystemID.String

	return campaign, nil
}
