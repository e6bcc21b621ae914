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
	performanceMetricsTable = "performance_metrics pm"
)

type MetricSnapshotRepository interface {
	GetLatestByPublicationID(ctx context.Context, publicationID string) (*domain.MetricSnapshot, error)
	Save(ctx context.Context, snapshot *domain.MetricSnapshot) error
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

// GetLatestByPublicationID retorna o snapshot mais recente da publicação, ou nil quando não há métricas
func (r *metricSnapshotRepository) GetLatestByPublicationID(ctx context.Context, publicationID string) (*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select("pm.id, pm.publication_id, pm.metric_date, pm.impressions, pm.views, pm.clicks, pm.conversions, pm.spend, pm.revenue, " +
			"pm.vtr, pm.ctr, pm.cpm, pm.cpc, pm.cpa, pm.roas, pm.engagement_rate, pm.created_at").
		From(performanceMetricsTable).
		Where(squirrel.Eq{"pm.publication_id": publicationID}).
		OrderBy("pm.metric_date DESC", "pm.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.MetricSnapshot{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.PublicationID,
		&snapshot.MetricDate,
		&snapshot.Impressions,
		&snapshot.Views,
		&snapshot.Clicks,
		&snapshot.Conversions,
		&snapshot.Spend,
		&snapshot.Revenue,
		&snapshot.VTR,
		&snapshot.CTR,
		&snapshot.CPM,
		&snapshot.CPC,
		&snapshot.CPA,
		&snapshot.ROAS,
		&snapshot.EngagementRate,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
	}

	return snapshot, nil
}

func (r *metricSnapshotRepository) Save(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("performance_metrics").
		Columns("id", "publication_id", "metric_date", "impressions", "views", "clicks", "conversions", "spend", "revenue",
			"vtr", "ctr", "cpm", "cpc", "cpa", "roas", "engagement_rate", "created_at").
		Values(
			snapshot.ID,
			snapshot.PublicationID,
			snapshot.MetricDate,
			snapshot.Impressions,
			snapshot.Views,
			snapshot.Clicks,
			snapshot.Conversions,
			snapshot.Spend,
			snapshot.Revenue,
			snapshot.VTR,
			snapshot.CTR,
			snapshot.CPM,
			snapshot.CPC,
			snapshot.CPA,
			snapshot.ROAS,
			snapshot.EngagementRate,
			snapshot.CreatedAt,
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
