package payroll

import "context"

type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]PayrollResponse, error)
	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// Approval workflow. Each transition checks the source state atomically
	// and appends exactly one audit entry in the same transaction.
	Submit(ctx context.Context, id string) (PayrollResponse, error)
	Approve(ctx context.Context, id string) (PayrollResponse, error)
	Reject(ctx context.Context, req RejectPayrollRequest) (PayrollResponse, error)
	Process(ctx context.Context, id string) (PayrollResponse, error)
	Edit(ctx context.Context, req EditPayrollRequest) (PayrollResponse, error)

	AuditLogs(ctx context.Context, filter AuditLogFilter) ([]AuditLogResponse, error)
}
