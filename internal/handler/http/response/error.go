package response

import (
	"errors"
	"net/http"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/master/position"
	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
	"github.com/workline-ph/erp-backend-go/internal/domain/report"
	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeArchived):
		Conflict(w, "Employee is archived")
	case errors.Is(err, employee.ErrEmployeeNotArchived):
		Conflict(w, "Employee is not archived")
	case errors.Is(err, employee.ErrNoEligibleEmployees):
		BadRequest(w, "No payroll-eligible employees found", nil)

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionTitleExists):
		Conflict(w, "Position title already exists in the department")
	case errors.Is(err, position.ErrPositionNotArchived):
		Conflict(w, "Position is not archived")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Employee has no active schedule assignment")
	case errors.Is(err, schedule.ErrActiveAssignmentExists):
		Conflict(w, "Employee already has an active schedule assignment")
	case errors.Is(err, schedule.ErrAssignmentNotArchived):
		Conflict(w, "Schedule assignment is not archived")
	case errors.Is(err, schedule.ErrScheduleNotArchived):
		Conflict(w, "Schedule is not archived")
	case errors.Is(err, schedule.ErrRestoreWouldBreakOneRule):
		Conflict(w, "Restoring would give the employee two active schedules")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotTimedIn):
		BadRequest(w, "Employee has not timed in", nil)
	case errors.Is(err, attendance.ErrAlreadyTimedIn):
		Conflict(w, "Employee has already timed in")
	case errors.Is(err, attendance.ErrAlreadyTimedOut):
		Conflict(w, "Employee has already timed out")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance record already processed")
	case errors.Is(err, attendance.ErrNoOvertimeClaim):
		BadRequest(w, "Attendance record has no overtime to approve", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrRuleNotFound):
		NotFound(w, "Deduction rule not found")
	case errors.Is(err, deduction.ErrBracketOverlap):
		Conflict(w, "Salary bracket overlaps an active rule of the same type")
	case errors.Is(err, deduction.ErrRuleNotArchived):
		Conflict(w, "Deduction rule is not archived")
	case errors.Is(err, deduction.ErrRuleAlreadyRemoved):
		Conflict(w, "Deduction rule is already archived")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrBatchExists):
		Conflict(w, "A payroll batch already exists for this period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		BadRequest(w, "Payroll is not in a state that allows this transition", nil)
	case errors.Is(err, payroll.ErrNotEditable):
		BadRequest(w, "Payroll can only be edited while rejected", nil)
	case errors.Is(err, payroll.ErrRemarksRequired):
		BadRequest(w, "Remarks are required when rejecting a payroll", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
