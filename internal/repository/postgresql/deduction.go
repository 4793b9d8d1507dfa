package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type deductionRuleRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRuleRepository(db *database.DB) deduction.DeductionRuleRepository {
	return &deductionRuleRepositoryImpl{db: db}
}

const deductionRuleColumns = `
	id, description, type, salary_range_from, salary_range_to, percentage_rate,
	employer_share, employee_share, min_contribution, max_contribution,
	effective_date, end_date, created_at, updated_at, deleted_at
`

func scanDeductionRule(row pgx.Row) (deduction.DeductionRule, error) {
	var rule deduction.DeductionRule
	err := row.Scan(
		&rule.ID, &rule.Description, &rule.Type, &rule.SalaryRangeFrom, &rule.SalaryRangeTo,
		&rule.PercentageRate, &rule.EmployerShare, &rule.EmployeeShare,
		&rule.MinContribution, &rule.MaxContribution, &rule.EffectiveDate, &rule.EndDate,
		&rule.CreatedAt, &rule.UpdatedAt, &rule.DeletedAt,
	)
	return rule, err
}

// Create implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) Create(ctx context.Context, rule deduction.DeductionRule) (deduction.DeductionRule, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO deduction_rules (
			description, type, salary_range_from, salary_range_to, percentage_rate,
			employer_share, employee_share, min_contribution, max_contribution,
			effective_date, end_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at, updated_at
	`

	created := rule
	err := q.QueryRow(ctx, query,
		rule.Description, rule.Type, rule.SalaryRangeFrom, rule.SalaryRangeTo,
		rule.PercentageRate, rule.EmployerShare, rule.EmployeeShare,
		rule.MinContribution, rule.MaxContribution, rule.EffectiveDate, rule.EndDate,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return deduction.DeductionRule{}, fmt.Errorf("failed to create deduction rule: %w", err)
	}

	return created, nil
}

// GetByID implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) GetByID(ctx context.Context, id string) (deduction.DeductionRule, error) {
	q := GetQuerier(ctx, d.db)

	query := `SELECT ` + deductionRuleColumns + ` FROM deduction_rules WHERE id = $1`

	rule, err := scanDeductionRule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.DeductionRule{}, deduction.ErrRuleNotFound
		}
		return deduction.DeductionRule{}, fmt.Errorf("failed to get deduction rule with id %s: %w", id, err)
	}

	return rule, nil
}

// List implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) List(ctx context.Context, includeArchived bool) ([]deduction.DeductionRule, error) {
	q := GetQuerier(ctx, d.db)

	query := `SELECT ` + deductionRuleColumns + ` FROM deduction_rules`
	if !includeArchived {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY type, salary_range_from"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []deduction.DeductionRule
	for rows.Next() {
		rule, err := scanDeductionRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// Update implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) Update(ctx context.Context, rule deduction.DeductionRule) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE deduction_rules
		SET description = $1, type = $2, salary_range_from = $3, salary_range_to = $4,
			percentage_rate = $5, employer_share = $6, employee_share = $7,
			min_contribution = $8, max_contribution = $9, effective_date = $10,
			end_date = $11, updated_at = NOW()
		WHERE id = $12 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rule.Description, rule.Type, rule.SalaryRangeFrom, rule.SalaryRangeTo,
		rule.PercentageRate, rule.EmployerShare, rule.EmployeeShare,
		rule.MinContribution, rule.MaxContribution, rule.EffectiveDate, rule.EndDate,
		rule.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrRuleNotFound
		}
		return fmt.Errorf("failed to update deduction rule with id %s: %w", rule.ID, err)
	}

	return nil
}

// Archive implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE deduction_rules
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrRuleNotFound
		}
		return fmt.Errorf("failed to archive deduction rule with id %s: %w", id, err)
	}

	return nil
}

// Restore implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE deduction_rules
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id
	`

	var restoredID string
	err := q.QueryRow(ctx, query, id).Scan(&restoredID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrRuleNotArchived
		}
		return fmt.Errorf("failed to restore deduction rule with id %s: %w", id, err)
	}

	return nil
}

// ListActiveOfType implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) ListActiveOfType(ctx context.Context, ruleType deduction.RuleType) ([]deduction.DeductionRule, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT ` + deductionRuleColumns + `
		FROM deduction_rules
		WHERE type = $1 AND deleted_at IS NULL
		ORDER BY salary_range_from
	`

	rows, err := q.Query(ctx, query, ruleType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s deduction rules: %w", ruleType, err)
	}
	defer rows.Close()

	var rules []deduction.DeductionRule
	for rows.Next() {
		rule, err := scanDeductionRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// ActiveRulesFor implements deduction.DeductionRuleRepository.
func (d *deductionRuleRepositoryImpl) ActiveRulesFor(ctx context.Context, gross decimal.Decimal, asOf time.Time) ([]deduction.DeductionRule, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT ` + deductionRuleColumns + `
		FROM deduction_rules
		WHERE deleted_at IS NULL
			AND salary_range_from <= $1 AND salary_range_to >= $1
			AND effective_date <= $2
			AND (end_date IS NULL OR end_date >= $2)
		ORDER BY type
	`

	rows, err := q.Query(ctx, query, gross, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []deduction.DeductionRule
	for rows.Next() {
		rule, err := scanDeductionRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
