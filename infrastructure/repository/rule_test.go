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

const selectRules = "SELECT dr.id, dr.name, dr.description, dr.metric, dr.operator, dr.threshold, dr.action, dr.priority, " +
	"dr.is_active, dr.created_at, dr.updated_at FROM decision_rules dr"

var ruleRowColumns = []string{"id", "name", "description", "metric", "operator", "threshold", "action", "priority", "is_active", "created_at", "updated_at"}

func TestRuleRepository_ListActiveRules(t *testing.T) {
	createdAt := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	conn, mock := newMockConnection(t)
	mock.ExpectQuery("^" + regexp.QuoteMeta(selectRules+" WHERE dr.is_active = $1 ORDER BY dr.priority ASC, dr.name ASC") + "$").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(ruleRowColumns).
			AddRow("rule-1", "VTR Bajo", nil, "vtr", "<", 10.0, "change_creative", int64(1), true, createdAt, createdAt).
			AddRow("rule-2", "CPM Alto", "Custo por mil acima do limite", "cpm", ">", 20.0, "adjust_bid", int64(3), true, createdAt, createdAt))

	rules, err := repository.NewRuleRepository(conn).ListActiveRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Empty(t, rules[0].Description)
	assert.Equal(t, domain.MetricVTR, rules[0].Metric)
	assert.Equal(t, domain.OperatorLessThan, rules[0].Operator)
	assert.Equal(t, 1, rules[0].Priority)
	assert.Equal(t, "Custo por mil acima do limite", rules[1].Description)
	assert.InDelta(t, 20.0, rules[1].Threshold, 1e-9)
}

func TestRuleRepository_ListRules(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery("^" + regexp.QuoteMeta(selectRules+" ORDER BY dr.priority ASC, dr.name ASC") + "$").
		WillReturnRows(sqlmock.NewRows(ruleRowColumns))

	rules, err := repository.NewRuleRepository(conn).ListRules(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestRuleRepository_GetRuleByID(t *testing.T) {
	createdAt := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	conn, mock := newMockConnection(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectRules + " WHERE dr.id = $1")).
		WithArgs("rule-1").
		WillReturnRows(sqlmock.NewRows(ruleRowColumns).
			AddRow("rule-1", "CTR Bajo", nil, "ctr", "<", 1.0, "optimize_targeting", int64(2), false, createdAt, createdAt))

	rule, err := repository.NewRuleRepository(conn).GetRuleByID(context.Background(), "rule-1")
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Empty(t, rule.Description)
	assert.False(t, rule.IsActive)
}

func TestRuleRepository_UpdateRule(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE decision_rules SET threshold = $1, priority = $2, is_active = $3, updated_at = NOW() WHERE id = $4")).
		WithArgs(15.0, int64(2), false, "rule-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.NewRuleRepository(conn).UpdateRule(context.Background(), &domain.Rule{ID: "rule-1", Threshold: 15, Priority: 2})
	require.NoError(t, err)
}
