package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the per-day presence outcome. Every employee starts the day
// Absent (created by the daily sweep) and moves to Present or Late on time-in.
type DayStatus string

const (
	DayStatusAbsent  DayStatus = "Absent"
	DayStatusPresent DayStatus = "Present"
	DayStatusLate    DayStatus = "Late"
)

// ApprovalStatus covers both the attendance row itself and its overtime
// claim; the two are approved independently.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Attendance is one row per (employee, calendar date). TimeIn/TimeOut are
// wall-clock "HH:MM:SS" strings on that date; computed fields are filled by
// the time-out action.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	TimeIn  *string
	TimeOut *string

	HoursWorked        decimal.Decimal
	OvertimeHours      decimal.Decimal
	LateMinutes        int
	UndertimeMinutes   int
	TardinessDeduction decimal.Decimal
	AbsenceDeduction   decimal.Decimal
	HolidayPay         decimal.Decimal

	Status                 DayStatus
	ApprovalStatus         ApprovalStatus
	OvertimeApprovalStatus ApprovalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

func (a Attendance) IsActive() bool {
	return a.DeletedAt == nil
}
