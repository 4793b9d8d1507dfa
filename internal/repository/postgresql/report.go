package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/report"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// MonthStatsFor implements report.ReportRepository. One aggregate query per
// employee-month; punctuality rate and average hours are derived in Go where
// decimal division is easier to keep exact.
func (r *reportRepositoryImpl) MonthStatsFor(ctx context.Context, employeeID string, month, year int) (report.MonthStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ($4, $5)),
			COUNT(*) FILTER (WHERE status = $5),
			COUNT(*) FILTER (WHERE status = $6),
			COUNT(*),
			COALESCE(SUM(hours_worked), 0),
			COALESCE(SUM(overtime_hours), 0),
			COALESCE(SUM(late_minutes), 0),
			COALESCE(SUM(undertime_minutes), 0),
			COUNT(*) FILTER (WHERE approval_status = $7),
			COUNT(*) FILTER (WHERE approval_status = $8),
			COUNT(*) FILTER (WHERE approval_status = $9)
		FROM attendances
		WHERE employee_id = $1
			AND date_trunc('month', date) = make_date($2, $3, 1)
			AND deleted_at IS NULL
	`

	var stats report.MonthStats
	var totalHours, overtimeHours decimal.Decimal
	err := q.QueryRow(ctx, query,
		employeeID, year, month,
		attendance.DayStatusPresent, attendance.DayStatusLate, attendance.DayStatusAbsent,
		attendance.ApprovalApproved, attendance.ApprovalRejected, attendance.ApprovalPending,
	).Scan(
		&stats.Attendance.PresentDays, &stats.Attendance.LateDays,
		&stats.Attendance.AbsentDays, &stats.Attendance.TotalDays,
		&totalHours, &overtimeHours,
		&stats.Punctuality.TotalLateMinutes, &stats.Punctuality.TotalUndertimeMinutes,
		&stats.Approvals.Approved, &stats.Approvals.Rejected, &stats.Approvals.Pending,
	)
	if err != nil {
		return report.MonthStats{}, fmt.Errorf("failed to aggregate month stats for employee %s: %w", employeeID, err)
	}

	stats.WorkingHours.TotalHours = totalHours
	stats.WorkingHours.OvertimeHours = overtimeHours
	if stats.Attendance.PresentDays > 0 {
		stats.WorkingHours.AverageHours = totalHours.
			Div(decimal.NewFromInt(int64(stats.Attendance.PresentDays))).Round(2)
	}
	if stats.Attendance.TotalDays > 0 {
		onTime := stats.Attendance.PresentDays - stats.Attendance.LateDays
		stats.Punctuality.PunctualityRate = decimal.NewFromInt(int64(onTime)).
			Div(decimal.NewFromInt(int64(stats.Attendance.TotalDays))).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	return stats, nil
}

// DepartmentAverages implements report.ReportRepository.
func (r *reportRepositoryImpl) DepartmentAverages(ctx context.Context, department string, month, year int) (report.DeptStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(AVG(per_employee.total_hours), 0),
			COALESCE(AVG(per_employee.late_minutes), 0),
			COALESCE(AVG(per_employee.present_days), 0)
		FROM (
			SELECT a.employee_id,
				SUM(a.hours_worked) AS total_hours,
				SUM(a.late_minutes) AS late_minutes,
				COUNT(*) FILTER (WHERE a.status IN ($4, $5)) AS present_days
			FROM attendances a
			JOIN employees e ON e.id = a.employee_id
			WHERE e.department = $1
				AND date_trunc('month', a.date) = make_date($2, $3, 1)
				AND a.deleted_at IS NULL
			GROUP BY a.employee_id
		) per_employee
	`

	var stats report.DeptStats
	err := q.QueryRow(ctx, query, department, year, month,
		attendance.DayStatusPresent, attendance.DayStatusLate,
	).Scan(&stats.AverageHours, &stats.AverageLateMinutes, &stats.AveragePresentDays)
	if err != nil {
		return report.DeptStats{}, fmt.Errorf("failed to aggregate department averages for %s: %w", department, err)
	}

	stats.AverageHours = stats.AverageHours.Round(2)
	stats.AverageLateMinutes = stats.AverageLateMinutes.Round(2)
	stats.AveragePresentDays = stats.AveragePresentDays.Round(2)
	return stats, nil
}

// DayDetails implements report.ReportRepository.
func (r *reportRepositoryImpl) DayDetails(ctx context.Context, employeeID string, month, year int) ([]report.DayDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), time_in, time_out,
			hours_worked, overtime_hours, late_minutes, status
		FROM attendances
		WHERE employee_id = $1
			AND date_trunc('month', date) = make_date($2, $3, 1)
			AND deleted_at IS NULL
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list day details for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var details []report.DayDetail
	for rows.Next() {
		var d report.DayDetail
		err := rows.Scan(
			&d.Date, &d.TimeIn, &d.TimeOut,
			&d.HoursWorked, &d.OvertimeHours, &d.LateMinutes, &d.Status,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
