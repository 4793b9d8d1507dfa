package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type TimeInRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

func (r *TimeInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be in HH:MM or HH:MM:SS format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

func (r *TimeOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be in HH:MM or HH:MM:SS format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	Page       int
	Limit      int
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
}

type AttendanceResponse struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	EmployeeName           *string         `json:"employee_name,omitempty"`
	Date                   string          `json:"date"`
	TimeIn                 *string         `json:"time_in,omitempty"`
	TimeOut                *string         `json:"time_out,omitempty"`
	HoursWorked            decimal.Decimal `json:"hours_worked"`
	OvertimeHours          decimal.Decimal `json:"overtime_hours"`
	LateMinutes            int             `json:"late_minutes"`
	UndertimeMinutes       int             `json:"undertime_minutes"`
	TardinessDeduction     decimal.Decimal `json:"tardiness_deduction"`
	HolidayPay             decimal.Decimal `json:"holiday_pay"`
	Status                 string          `json:"status"`
	ApprovalStatus         string          `json:"approval_status"`
	OvertimeApprovalStatus string          `json:"overtime_approval_status"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

// PeriodSummary aggregates one employee's attendance rows over a payroll
// period; the payroll generator consumes it.
type PeriodSummary struct {
	EmployeeID         string
	TotalHours         decimal.Decimal
	OvertimeHours      decimal.Decimal
	TardinessDeduction decimal.Decimal
	AbsenceDays        int
	AbsenceDeduction   decimal.Decimal
	HolidayPay         decimal.Decimal
	PresentDays        int
}
