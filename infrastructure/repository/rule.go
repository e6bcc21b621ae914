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
	decisionRulesTable = "decision_rules dr"
	ruleColumns        = "dr.id, dr.name, dr.description, dr.metric, dr.operator, dr.threshold, dr.action, dr.priority, dr.is_active, dr.created_at, dr.updated_at"
)

type RuleRepository interface {
	ListActiveRules(ctx context.Context) ([]*domain.Rule, error)
	ListRules(ctx context.Context) ([]*domain.Rule, error)
	GetRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error)
	UpdateRule(ctx context.Context, rule *domain.Rule) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

// ListActiveRules retorna as regras ativas ordenadas por prioridade (1 primeiro)
func (r *ruleRepository) ListActiveRules(ctx context.Context) ([]*domain.Rule, error) {
	return r.listRules(ctx, squirrel.Eq{"dr.is_active": true})
}

func (r *ruleRepository) ListRules(ctx context.Context) ([]*domain.Rule, error) {
	return r.listRules(ctx, nil)
}

func (r *ruleRepository) listRules(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Rule, error) {
	builder := squirrel.
		Select(ruleColumns).
		From(decisionRulesTable).
		OrderBy("dr.priority ASC", "dr.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
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

	rules := make([]*domain.Rule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra: %w", err)
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *ruleRepository) GetRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns).
		From(decisionRulesTable).
		Where(squirrel.Eq{"dr.id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rule, err := scanRule(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear regra: %w", err)
	}

	return rule, nil
}

func (r *ruleRepository) UpdateRule(ctx context.Context, rule *domain.Rule) error {
	query, args, err := squirrel.
		Update("decision_rules").
		Set("threshold", rule.Threshold).
		Set("priority", rule.Priority).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRule(row rowScanner) (*domain.Rule, error) {
	rule := &domain.Rule{}
	var description sql.NullString

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&description,
		&rule.Metric,
		&rule.Operator,
		&rule.Threshold,
		&rule.Action,
		&rule.Priority,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.Description = description.String

	return rule, nil
}
