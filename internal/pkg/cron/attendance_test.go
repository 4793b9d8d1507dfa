package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	received []attendance.Attendance
	inserted int
}

func (f *fakeAttendanceRepo) BulkCreateAbsences(_ context.Context, rows []attendance.Attendance) (int, error) {
	f.received = rows
	return f.inserted, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetPayrollEligible(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func TestSweepToday(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{inserted: 2}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1"},
		{ID: "emp-2"},
	}}

	sweeper := NewAbsenceSweeper(attendanceRepo, employeeRepo)
	before := time.Now()
	require.NoError(t, sweeper.SweepToday(context.Background()))
	after := time.Now()

	require.Len(t, attendanceRepo.received, 2)
	for _, row := range attendanceRepo.received {
		assert.Equal(t, attendance.DayStatusAbsent, row.Status)
		assert.Equal(t, attendance.ApprovalPending, row.ApprovalStatus)
		assert.Equal(t, attendance.ApprovalPending, row.OvertimeApprovalStatus)
		// Midnight of the local calendar day, not a UTC-truncated instant.
		assert.True(t, row.Date.Equal(localMidnight(before)) || row.Date.Equal(localMidnight(after)),
			"date %s", row.Date)
	}
	assert.Equal(t, "emp-1", attendanceRepo.received[0].EmployeeID)
	assert.Equal(t, "emp-2", attendanceRepo.received[1].EmployeeID)
}

func TestSweepTodayNoEmployees(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{}
	sweeper := NewAbsenceSweeper(attendanceRepo, &fakeEmployeeRepo{})

	require.NoError(t, sweeper.SweepToday(context.Background()))
	assert.Empty(t, attendanceRepo.received)
}
