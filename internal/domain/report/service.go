package report

import "context"

type ReportService interface {
	GetMonthlyReport(ctx context.Context, employeeID string, month, year int) (MonthlyReportResponse, error)
}
