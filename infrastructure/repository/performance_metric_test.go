package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-decision-api/infrastructure/repository"
	"github.com/vfg2006/performance-decision-api/internal/domain"
)

const metricColumns = "pm.id, pm.publication_id, pm.metric_date, pm.impressions, pm.views, pm.clicks, pm.conversions, pm.spend, pm.revenue, " +
	"pm.vtr, pm.ctr, pm.cpm, pm.cpc, pm.cpa, pm.roas, pm.engagement_rate, pm.created_at"

func TestMetricSnapshotRepository_GetLatestByPublicationID(t *testing.T) {
	metricDate := time.Date(2024, 7, 10, 15, 30, 0, 0, time.UTC)
	query := "SELECT " + metricColumns + " FROM performance_metrics pm WHERE pm.publication_id = $1 " +
		"ORDER BY pm.metric_date DESC, pm.created_at DESC LIMIT 1"
	columns := []string{"id", "publication_id", "metric_date", "impressions", "views", "clicks", "conversions", "spend", "revenue",
		"vtr", "ctr", "cpm", "cpc", "cpa", "roas", "engagement_rate", "created_at"}

	t.Run("métricas derivadas ausentes continuam nulas", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery("^" + regexp.QuoteMeta(query) + "$").
			WithArgs("pub-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				"m-1", "pub-1", metricDate, int64(1000), int64(0), int64(20), int64(0), 50.0, nil,
				nil, 2.0, 50.0, 2.5, nil, nil, nil, metricDate,
			))

		snapshot, err := repository.NewMetricSnapshotRepository(conn).GetLatestByPublicationID(context.Background(), "pub-1")
		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, metricDate, snapshot.MetricDate)
		assert.Nil(t, snapshot.Revenue)
		assert.Nil(t, snapshot.VTR)
		require.NotNil(t, snapshot.CTR)
		assert.InDelta(t, 2.0, *snapshot.CTR, 1e-9)
		assert.Nil(t, snapshot.ROAS)
	})

	t.Run("sem métricas retorna nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery("^" + regexp.QuoteMeta(query) + "$").
			WithArgs("pub-1").
			WillReturnRows(sqlmock.NewRows(columns))

		snapshot, err := repository.NewMetricSnapshotRepository(conn).GetLatestByPublicationID(context.Background(), "pub-1")
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestMetricSnapshotRepository_Save_KeepsTimeOfDay(t *testing.T) {
	metricDate := time.Date(2024, 7, 10, 15, 30, 0, 0, time.UTC)
	ctr := 2.0

	conn, mock := newMockConnection(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO performance_metrics (id,publication_id,metric_date,impressions,views,clicks,conversions,spend,revenue," +
		"vtr,ctr,cpm,cpc,cpa,roas,engagement_rate,created_at) VALUES (" + placeholders(17) + ")")).
		WithArgs("m-1", "pub-1", metricDate, int64(1000), int64(0), int64(20), int64(0), 50.0, nil,
			nil, ctr, nil, nil, nil, nil, nil, metricDate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.NewMetricSnapshotRepository(conn).Save(context.Background(), &domain.MetricSnapshot{
		ID:            "m-1",
		PublicationID: "pub-1",
		MetricDate:    metricDate,
		Impressions:   1000,
		Clicks:        20,
		Spend:         50,
		CTR:           &ctr,
		CreatedAt:     metricDate,
	})
	require.NoError(t, err)
}
