package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
)

// AbsenceSweeper seeds an Absent row for every active employee each day so
// that time-in always has a row to upgrade and payroll never misses a day.
type AbsenceSweeper struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAbsenceSweeper(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AbsenceSweeper {
	return &AbsenceSweeper{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// SweepToday inserts the day's Absent rows. Existing rows are left untouched,
// so rerunning the sweep is harmless.
func (s *AbsenceSweeper) SweepToday(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	employees, err := s.employeeRepo.GetPayrollEligible(ctx)
	if err != nil {
		return err
	}

	rows := make([]attendance.Attendance, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, attendance.Attendance{
			EmployeeID:             emp.ID,
			Date:                   today,
			Status:                 attendance.DayStatusAbsent,
			ApprovalStatus:         attendance.ApprovalPending,
			OvertimeApprovalStatus: attendance.ApprovalPending,
		})
	}

	inserted, err := s.attendanceRepo.BulkCreateAbsences(ctx, rows)
	if err != nil {
		return err
	}

	slog.Info("Attendance sweep completed",
		"date", today.Format("2006-01-02"),
		"employees", len(employees),
		"inserted", inserted,
	)
	return nil
}

// Register wires the sweeper into the scheduler with a daily interval.
func (s *AbsenceSweeper) Register(scheduler *Scheduler) {
	scheduler.AddJob("attendance-absence-sweep", 24*time.Hour, s.SweepToday)
}
