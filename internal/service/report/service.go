package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/report"
)

type reportServiceImpl struct {
	reportRepo   report.ReportRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(
	reportRepo report.ReportRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &reportServiceImpl{
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
	}
}

// GetMonthlyReport fans the four independent aggregations out concurrently;
// the sections touch disjoint data so they compose without ordering.
func (s *reportServiceImpl) GetMonthlyReport(ctx context.Context, employeeID string, month, year int) (report.MonthlyReportResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return report.MonthlyReportResponse{}, report.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}

	var (
		current  report.MonthStats
		previous report.MonthStats
		dept     report.DeptStats
		details  []report.DayDetail
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.reportRepo.MonthStatsFor(gCtx, employeeID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.reportRepo.MonthStatsFor(gCtx, employeeID, prevMonth, prevYear)
		return err
	})
	g.Go(func() error {
		var err error
		dept, err = s.reportRepo.DepartmentAverages(gCtx, emp.Department, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		details, err = s.reportRepo.DayDetails(gCtx, employeeID, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	position := ""
	if emp.PositionTitle != nil {
		position = *emp.PositionTitle
	}

	return report.MonthlyReportResponse{
		Employee: report.ReportEmployee{
			ID:           emp.ID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName(),
			Department:   emp.Department,
			Position:     position,
		},
		Period: report.ReportPeriod{
			Month: month,
			Year:  year,
		},
		CurrentMonth: current,
		Comparison: report.ReportComparison{
			PreviousMonth:      previous,
			DepartmentAverages: dept,
		},
		Details: details,
	}, nil
}
