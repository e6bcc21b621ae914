package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/performance-decision-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

const (
	recommendationsTable  = "recommendations r"
	recommendationColumns = "r.id, r.publication_id, r.rule_id, r.severity, r.message, r.action_required, r.is_resolved, r.resolved_at, r.created_at"
	severityRankOrder     = "CASE r.severity WHEN 'critical' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 WHEN 'low' THEN 4 ELSE 5 END"
)

type RecommendationRepository interface {
	GetUnresolved(ctx context.Context, publicationID, ruleID string) (*domain.Recommendation, error)
	Create(ctx context.Context, recommendation *domain.Recommendation) (bool, error)
	Resolve(ctx context.Context, recommendationID string, resolvedAt time.Time) (bool, error)
	ListByPublicationID(ctx context.Context, publicationID string, includeResolved bool) ([]*domain.Recommendation, error)
	GetStatsByCampaignID(ctx context.Context, campaignID string) (*domain.RecommendationStats, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

func (r *recommendationRepository) GetUnresolved(ctx context.Context, publicationID, ruleID string) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{
			"r.publication_id": publicationID,
			"r.rule_id":        ruleID,
			"r.is_resolved":    false,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	recommendation := &domain.Recommendation{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&recommendation.ID,
		&recommendation.PublicationID,
		&recommendation.RuleID,
		&recommendation.Severity,
		&recommendation.Message,
		&recommendation.ActionRequired,
		&recommendation.IsResolved,
		&recommendation.ResolvedAt,
		&recommendation.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return recommendation, nil
}

// Create insere a recomendação. Retorna false quando já existe uma recomendação não
// resolvida para o mesmo par (publicação, regra), garantido pelo índice único parcial.
func (r *recommendationRepository) Create(ctx context.Context, recommendation *domain.Recommendation) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("recommendations").
		Columns("id", "publication_id", "rule_id", "severity", "message", "action_required", "is_resolved", "resolved_at", "created_at").
		Values(
			recommendation.ID,
			recommendation.PublicationID,
			recommendation.RuleID,
			recommendation.Severity,
			recommendation.Message,
			recommendation.ActionRequired,
			recommendation.IsResolved,
			recommendation.ResolvedAt,
			recommendation.CreatedAt,
		).
		Suffix("ON CONFLICT (publication_id, rule_id) WHERE is_resolved = false DO NOTHING").
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

// Resolve marca a recomendação como resolvida. Retorna false se o ID não existir.
func (r *recommendationRepository) Resolve(ctx context.Context, recommendationID string, resolvedAt time.Time) (bool, error) {
	query, args, err := squirrel.
		Update("recommendations").
		Set("is_resolved", true).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"id": recommendationID}).
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

func (r *recommendationRepository) ListByPublicationID(ctx context.Context, publicationID string, includeResolved bool) ([]*domain.Recommendation, error) {
	builder := squirrel.
		Select(recommendationColumns+", dr.name, COALESCE(dr.description, '')").
		From(recommendationsTable).
		Join("decision_rules dr ON r.rule_id = dr.id").
		Where(squirrel.Eq{"r.publication_id": publicationID}).
		PlaceholderFormat(squirrel.Dollar)

	if includeResolved {
		builder = builder.OrderBy("r.created_at DESC")
	} else {
		builder = builder.
			Where(squirrel.Eq{"r.is_resolved": false}).
			OrderBy(severityRankOrder, "r.created_at DESC")
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

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		recommendation := &domain.Recommendation{}
		err := rows.Scan(
			&recommendation.ID,
			&recommendation.PublicationID,
			&recommendation.RuleID,
			&recommendation.Severity,
			&recommendation.Message,
			&recommendation.ActionRequired,
			&recommendation.IsResolved,
			&recommendation.ResolvedAt,
			&recommendation.CreatedAt,
			&recommendation.RuleName,
			&recommendation.RuleDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}
		recommendations = append(recommendations, recommendation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}

func (r *recommendationRepository) GetStatsByCampaignID(ctx context.Context, campaignID string) (*domain.RecommendationStats, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(CASE WHEN r.is_resolved = false THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN r.severity = 'critical' AND r.is_resolved = false THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN r.severity = 'high' AND r.is_resolved = false THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN r.severity = 'medium' AND r.is_resolved = false THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN r.severity = 'low' AND r.is_resolved = false THEN 1 ELSE 0 END), 0)",
		).
		From(recommendationsTable).
		Join("publications p ON r.publication_id = p.id").
		Where(squirrel.Eq{"p.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stats := &domain.RecommendationStats{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Active,
		&stats.Critical,
		&stats.High,
		&stats.Medium,
		&stats.Low,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estatísticas: %w", err)
	}

	return stats, nil
}
