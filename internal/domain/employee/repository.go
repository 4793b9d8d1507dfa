package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error

	// GetPayrollEligible returns every active employee except Super Admins.
	GetPayrollEligible(ctx context.Context) ([]Employee, error)

	// HourlyRateByEmployeeID resolves the employee's position rate. A missing
	// employee or position yields decimal.Zero, never an error: zero is the
	// documented "no computable pay" sentinel.
	HourlyRateByEmployeeID(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
