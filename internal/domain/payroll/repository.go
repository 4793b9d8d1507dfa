package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// BatchExists reports whether a non-archived batch exists for the exact
	// period. The storage layer also carries a unique index on the pair, so a
	// concurrent duplicate insert still fails with ErrBatchExists.
	BatchExists(ctx context.Context, start, end time.Time) (bool, error)
	CreateBatch(ctx context.Context, rows []Payroll) ([]Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	// TransitionStatus performs the conditional state write: the row moves
	// from "from" to "to" only if it is still in "from" at commit time.
	// Returns ErrInvalidTransition when the row exists but is in another
	// state, ErrPayrollNotFound when it does not exist.
	TransitionStatus(ctx context.Context, id string, from, to Status, remarks *string) error

	// UpdateFields applies an edit to a rejected payroll without touching the
	// status, recomputing the dependent totals.
	UpdateFields(ctx context.Context, id string, req EditPayrollRequest) error
}

type AuditLogRepository interface {
	Append(ctx context.Context, entry AuditLogEntry) (AuditLogEntry, error)
	ListByPayroll(ctx context.Context, payrollID string) ([]AuditLogEntry, error)

	// ListAll filters by the referenced payroll's period dates, not the
	// entry's own timestamp.
	ListAll(ctx context.Context, periodStart, periodEnd *time.Time) ([]AuditLogEntry, error)
}
