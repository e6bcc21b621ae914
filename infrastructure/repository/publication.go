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
	publicationsTable  = "publications p"
	publicationColumns = "p.id, p.campaign_id, p.content_piece_id, p.name, p.status, p.platform, p.format, p.buy_type, p.duration, " +
		"p.objective, p.budget, p.start_date, p.end_date, p.creative_version, p.parent_id, p.created_at, p.updated_at"
)

type PublicationRepository interface {
	GetByID(ctx context.Context, publicationID string) (*domain.Publication, error)
	ListByCampaignID(ctx context.Context, campaignID string, statuses []domain.PublicationStatus) ([]*domain.Publication, error)
	GetMaxCreativeVersion(ctx context.Context, rootID string) (int, error)
	CreateVersion(ctx context.Context, version *domain.Publication, originalID string) error
	CreatePublication(ctx context.Context, publication *domain.Publication) error
	UpdatePublication(ctx context.Context, publication *domain.Publication) error
	DeletePublication(ctx context.Context, publicationID string) (bool, error)
}

type publicationRepository struct {
	conn *postgres.Connection
}

func NewPublicationRepository(conn *postgres.Connection) PublicationRepository {
	return &publicationRepository{
		conn: conn,
	}
}

func (r *publicationRepository) GetByID(ctx context.Context, publicationID string) (*domain.Publication, error) {
	query, args, err := squirrel.
		Select(publicationColumns).
		From(publicationsTable).
		Where(squirrel.Eq{"p.id": publicationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	publication, err := scanPublication(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear publicação: %w", err)
	}

	return publication, nil
}

func (r *publicationRepository) ListByCampaignID(ctx context.Context, campaignID string, statuses []domain.PublicationStatus) ([]*domain.Publication, error) {
	builder := squirrel.
		Select(publicationColumns).
		From(publicationsTable).
		Where(squirrel.Eq{"p.campaign_id": campaignID}).
		OrderBy("p.created_at ASC", "p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"p.status": statuses})
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

	publications := make([]*domain.Publication, 0)
	for rows.Next() {
		publication, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear publicação: %w", err)
		}
		publications = append(publications, publication)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return publications, nil
}

// GetMaxCreativeVersion retorna a maior versão criativa da família (original + derivadas)
func (r *publicationRepository) GetMaxCreativeVersion(ctx context.Context, rootID string) (int, error) {
	query, args, err := squirrel.
		Select("COALESCE(MAX(p.creative_version), 0)").
		From(publicationsTable).
		Where(squirrel.Or{
			squirrel.Eq{"p.id": rootID},
			squirrel.Eq{"p.parent_id": rootID},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var maxVersion int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&maxVersion); err != nil {
		return 0, fmt.Errorf("erro ao escanear versão criativa: %w", err)
	}

	return maxVersion, nil
}

// CreateVersion insere a nova versão e pausa a publicação original na mesma transação
func (r *publicationRepository) CreateVersion(ctx context.Context, version *domain.Publication, originalID string) error {
	insertSQL, insertArgs, err := insertPublicationQuery(version)
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	pauseSQL, pauseArgs, err := squirrel.
		Update("publications").
		Set("status", domain.PublicationStatusPaused).
		Set("updated_at", version.CreatedAt).
		Where(squirrel.Eq{"id": originalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de atualização: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return wrapExecError(err)
		}

		if _, err := tx.ExecContext(ctx, pauseSQL, pauseArgs...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
}

func (r *publicationRepository) CreatePublication(ctx context.Context, publication *domain.Publication) error {
	query, args, err := insertPublicationQuery(publication)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// Update grava os campos editáveis da publicação. Versão e família não mudam.
func (r *publicationRepository) UpdatePublication(ctx context.Context, publication *domain.Publication) error {
	query, args, err := squirrel.
		Update("publications").
		Set("name", publication.Name).
		Set("status", publication.Status).
		Set("platform", nullString(publication.Platform)).
		Set("format", nullString(publication.Format)).
		Set("buy_type", nullString(publication.BuyType)).
		Set("duration", publication.Duration).
		Set("objective", nullString(publication.Objective)).
		Set("budget", publication.Budget).
		Set("start_date", publication.StartDate).
		Set("end_date", publication.EndDate).
		Set("updated_at", publication.UpdatedAt).
		Where(squirrel.Eq{"id": publication.ID}).
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

// Delete remove a publicação. Métricas e recomendações são removidas em cascata.
func (r *publicationRepository) DeletePublication(ctx context.Context, publicationID string) (bool, error) {
	query, args, err := squirrel.
		Delete("publications").
		Where(squirrel.Eq{"id": publicationID}).
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

func insertPublicationQuery(publication *domain.Publication) (string, []any, error) {
	return squirrel.
		Insert("publications").
		Columns("id", "campaign_id", "content_piece_id", "name", "status", "platform", "format", "buy_type", "duration",
			"objective", "budget", "start_date", "end_date", "creative_version", "parent_id", "created_at", "updated_at").
		Values(
			publication.ID,
			publication.CampaignID,
			publication.ContentPieceID,
			publication.Name,
			publication.Status,
			nullString(publication.Platform),
			nullString(publication.Format),
			nullString(publication.BuyType),
			publication.Duration,
			nullString(publication.Objective),
			publication.Budget,
			publication.StartDate,
			publication.EndDate,
			publication.CreativeVersion,
			publication.ParentID,
			publication.CreatedAt,
			publication.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// scanPublication aceita NULL nas colunas opcionais do cadastro
func scanPublication(row rowScanner) (*domain.Publication, error) {
	publication := &domain.Publication{}
	var platform, format, buyType, objective sql.NullString
	var budget sql.NullFloat64

	if err := row.Scan(
		&publication.ID,
		&publication.CampaignID,
		&publication.ContentPieceID,
		&publication.Name,
		&publication.Status,
		&platform,
		&format,
		&buyType,
		&publication.Duration,
		&objective,
		&budget,
		&publication.StartDate,
		&publication.EndDate,
		&publication.CreativeVersion,
		&publication.ParentID,
		&publication.CreatedAt,
		&publication.UpdatedAt,
	); err != nil {
		return nil, err
	}

	publication.Platform = platform.String
	publication.Format = format.String
	publication.BuyType = buyType.String
	publication.Objective = objective.String
	publication.Budget = budget.Float64

	return publication, nil
}
