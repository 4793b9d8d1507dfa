package report

import "context"

type ReportRepository interface {
	// MonthStatsFor aggregates one employee's attendance rows for one month.
	MonthStatsFor(ctx context.Context, employeeID string, month, year int) (MonthStats, error)

	// DepartmentAverages aggregates per-employee averages across a department
	// for one month.
	DepartmentAverages(ctx context.Context, department string, month, year int) (DeptStats, error)

	// DayDetails returns the employee's per-day rows for the month, ordered
	// by date ascending.
	DayDetails(ctx context.Context, employeeID string, month, year int) ([]DayDetail, error)
}
