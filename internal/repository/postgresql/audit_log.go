package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) payroll.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

// Append implements payroll.AuditLogRepository. The table has no UPDATE or
// DELETE path anywhere in this codebase; entries only accumulate.
func (a *auditLogRepositoryImpl) Append(ctx context.Context, entry payroll.AuditLogEntry) (payroll.AuditLogEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO payroll_audit_logs (payroll_id, actor_id, action, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := entry
	err := q.QueryRow(ctx, query, entry.PayrollID, entry.ActorID, entry.Action, entry.Remarks).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return payroll.AuditLogEntry{}, fmt.Errorf("failed to append audit log entry: %w", err)
	}

	return created, nil
}

const auditLogSelect = `
	SELECT al.id, al.payroll_id, al.actor_id, al.action, al.remarks, al.created_at,
		CONCAT(e.first_name, ' ', e.last_name), pr.period_start, pr.period_end
	FROM payroll_audit_logs al
	JOIN payrolls pr ON pr.id = al.payroll_id
	LEFT JOIN employees e ON e.id = al.actor_id
`

// ListByPayroll implements payroll.AuditLogRepository.
func (a *auditLogRepositoryImpl) ListByPayroll(ctx context.Context, payrollID string) ([]payroll.AuditLogEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := auditLogSelect + `
		WHERE al.payroll_id = $1
		ORDER BY al.created_at
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log for payroll %s: %w", payrollID, err)
	}
	defer rows.Close()

	var entries []payroll.AuditLogEntry
	for rows.Next() {
		var entry payroll.AuditLogEntry
		err := rows.Scan(
			&entry.ID, &entry.PayrollID, &entry.ActorID, &entry.Action,
			&entry.Remarks, &entry.CreatedAt,
			&entry.ActorName, &entry.PeriodStart, &entry.PeriodEnd,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ListAll implements payroll.AuditLogRepository. The date filters apply to
// the referenced payroll's period, not the entry timestamp: "audit activity
// for the July run" regardless of when the clicks happened.
func (a *auditLogRepositoryImpl) ListAll(ctx context.Context, periodStart, periodEnd *time.Time) ([]payroll.AuditLogEntry, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if periodStart != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period_start >= $%d", argPos))
		args = append(args, *periodStart)
		argPos++
	}
	if periodEnd != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period_end <= $%d", argPos))
		args = append(args, *periodEnd)
		argPos++
	}

	query := auditLogSelect + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY al.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.AuditLogEntry
	for rows.Next() {
		var entry payroll.AuditLogEntry
		err := rows.Scan(
			&entry.ID, &entry.PayrollID, &entry.ActorID, &entry.Action,
			&entry.Remarks, &entry.CreatedAt,
			&entry.ActorName, &entry.PeriodStart, &entry.PeriodEnd,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
