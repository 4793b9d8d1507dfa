package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	pr.id, pr.employee_id, pr.period_start, pr.period_end,
	pr.total_hours, pr.overtime_hours, pr.present_days, pr.absence_days,
	pr.regular_pay, pr.overtime_pay, pr.holiday_pay, pr.allowance, pr.bonus, pr.tax,
	pr.tardiness_deduction, pr.absence_deduction, pr.mandatory_deduction,
	pr.total_deduction, pr.gross_pay, pr.net_pay,
	pr.status, pr.remarks, pr.created_at, pr.updated_at, pr.deleted_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.TotalHours, &p.OvertimeHours, &p.PresentDays, &p.AbsenceDays,
		&p.RegularPay, &p.OvertimePay, &p.HolidayPay, &p.Allowance, &p.Bonus, &p.Tax,
		&p.TardinessDeduction, &p.AbsenceDeduction, &p.MandatoryDeduction,
		&p.TotalDeduction, &p.GrossPay, &p.NetPay,
		&p.Status, &p.Remarks, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	return p, err
}

// BatchExists implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) BatchExists(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payrolls
			WHERE period_start = $1 AND period_end = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll batch existence: %w", err)
	}
	return exists, nil
}

// CreateBatch implements payroll.PayrollRepository. Meant to run inside
// WithTransaction so the batch lands all-or-nothing.
func (r *payrollRepositoryImpl) CreateBatch(ctx context.Context, rows []payroll.Payroll) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			employee_id, period_start, period_end,
			total_hours, overtime_hours, present_days, absence_days,
			regular_pay, overtime_pay, holiday_pay, allowance, bonus, tax,
			tardiness_deduction, absence_deduction, mandatory_deduction,
			total_deduction, gross_pay, net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id, created_at, updated_at
	`

	created := make([]payroll.Payroll, 0, len(rows))
	for _, p := range rows {
		row := p
		err := q.QueryRow(ctx, query,
			p.EmployeeID, p.PeriodStart, p.PeriodEnd,
			p.TotalHours, p.OvertimeHours, p.PresentDays, p.AbsenceDays,
			p.RegularPay, p.OvertimePay, p.HolidayPay, p.Allowance, p.Bonus, p.Tax,
			p.TardinessDeduction, p.AbsenceDeduction, p.MandatoryDeduction,
			p.TotalDeduction, p.GrossPay, p.NetPay, p.Status,
		).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
				return nil, payroll.ErrBatchExists
			}
			return nil, fmt.Errorf("failed to insert payroll for employee %s: %w", p.EmployeeID, err)
		}
		created = append(created, row)
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			e.employee_code, CONCAT(e.first_name, ' ', e.last_name), e.department
		FROM payrolls pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.id = $1 AND pr.deleted_at IS NULL
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.TotalHours, &p.OvertimeHours, &p.PresentDays, &p.AbsenceDays,
		&p.RegularPay, &p.OvertimePay, &p.HolidayPay, &p.Allowance, &p.Bonus, &p.Tax,
		&p.TardinessDeduction, &p.AbsenceDeduction, &p.MandatoryDeduction,
		&p.TotalDeduction, &p.GrossPay, &p.NetPay,
		&p.Status, &p.Remarks, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&p.EmployeeCode, &p.EmployeeName, &p.Department,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll with id %s: %w", id, err)
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"pr.deleted_at IS NULL"}
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period_start >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period_end <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("pr.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM payrolls pr WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := `
		SELECT ` + payrollColumns + `,
			e.employee_code, CONCAT(e.first_name, ' ', e.last_name), e.department
		FROM payrolls pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE ` + where + `
		ORDER BY pr.period_start DESC, e.employee_code
	`
	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
			&p.TotalHours, &p.OvertimeHours, &p.PresentDays, &p.AbsenceDays,
			&p.RegularPay, &p.OvertimePay, &p.HolidayPay, &p.Allowance, &p.Bonus, &p.Tax,
			&p.TardinessDeduction, &p.AbsenceDeduction, &p.MandatoryDeduction,
			&p.TotalDeduction, &p.GrossPay, &p.NetPay,
			&p.Status, &p.Remarks, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
			&p.EmployeeCode, &p.EmployeeName, &p.Department,
		)
		if err != nil {
			return nil, 0, err
		}
		payrolls = append(payrolls, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return payrolls, total, nil
}

// TransitionStatus implements payroll.PayrollRepository. The WHERE clause
// carries the expected source state, so two concurrent transitions cannot
// both succeed: the second one sees zero rows and is told the state moved.
func (r *payrollRepositoryImpl) TransitionStatus(ctx context.Context, id string, from, to payroll.Status, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, remarks = COALESCE($2, remarks), updated_at = NOW()
		WHERE id = $3 AND status = $4 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, to, remarks, id, from).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Disambiguate: missing row vs row in the wrong state.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return payroll.ErrInvalidTransition
		}
		return fmt.Errorf("failed to transition payroll %s from %s to %s: %w", id, from, to, err)
	}

	return nil
}

// UpdateFields implements payroll.PayrollRepository. Total deduction and net
// pay are recomputed in SQL from the stored components, so an edit can never
// leave the row internally inconsistent.
func (r *payrollRepositoryImpl) UpdateFields(ctx context.Context, id string, req payroll.EditPayrollRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET allowance = COALESCE($1, allowance),
			bonus = COALESCE($2, bonus),
			tax = COALESCE($3, tax),
			remarks = COALESCE($4, remarks),
			total_deduction = tardiness_deduction + absence_deduction + mandatory_deduction + COALESCE($3, tax),
			gross_pay = regular_pay + overtime_pay + holiday_pay + COALESCE($1, allowance) + COALESCE($2, bonus),
			net_pay = (regular_pay + overtime_pay + holiday_pay + COALESCE($1, allowance) + COALESCE($2, bonus))
				- (tardiness_deduction + absence_deduction + mandatory_deduction + COALESCE($3, tax)),
			updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Allowance, req.Bonus, req.Tax, req.Remarks, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to edit payroll with id %s: %w", id, err)
	}

	return nil
}
