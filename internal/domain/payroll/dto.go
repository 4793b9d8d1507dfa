package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectPayrollRequest struct {
	ID      string `json:"-"`
	Remarks string `json:"remarks"`
}

func (r *RejectPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Remarks) {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "is required when rejecting"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditPayrollRequest applies field updates to a rejected payroll. The status
// is untouched; the caller must re-submit to move it back into review.
type EditPayrollRequest struct {
	ID        string           `json:"-"`
	Allowance *decimal.Decimal `json:"allowance,omitempty"`
	Bonus     *decimal.Decimal `json:"bonus,omitempty"`
	Tax       *decimal.Decimal `json:"tax,omitempty"`
	Remarks   *string          `json:"remarks,omitempty"`
}

func (r *EditPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Allowance != nil && r.Allowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be non-negative"})
	}
	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Tax != nil && r.Tax.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tax", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	Page       int
	Limit      int
	StartDate  *string
	EndDate    *string
	EmployeeID *string
	Status     *Status
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	PeriodStart  string  `json:"start_date"`
	PeriodEnd    string  `json:"end_date"`

	TotalHours    decimal.Decimal `json:"total_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	PresentDays   int             `json:"present_days"`
	AbsenceDays   int             `json:"absence_days"`

	RegularPay         decimal.Decimal `json:"regular_pay"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	HolidayPay         decimal.Decimal `json:"holiday_pay"`
	Allowance          decimal.Decimal `json:"allowance"`
	Bonus              decimal.Decimal `json:"bonus"`
	Tax                decimal.Decimal `json:"tax"`
	TardinessDeduction decimal.Decimal `json:"tardiness_deduction"`
	AbsenceDeduction   decimal.Decimal `json:"absence_deduction"`
	MandatoryDeduction decimal.Decimal `json:"mandatory_deduction"`
	TotalDeduction     decimal.Decimal `json:"total_deduction"`
	GrossPay           decimal.Decimal `json:"gross_pay"`
	NetPay             decimal.Decimal `json:"net_pay"`

	Status      int     `json:"status"`
	StatusLabel string  `json:"status_label"`
	Remarks     *string `json:"remarks,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type AuditLogResponse struct {
	ID        string  `json:"id"`
	PayrollID string  `json:"payroll_id"`
	ActorID   string  `json:"actor_id"`
	ActorName *string `json:"actor_name,omitempty"`
	Action    string  `json:"action"`
	Remarks   *string `json:"remarks,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type AuditLogFilter struct {
	PayrollID *string
	StartDate *string
	EndDate   *string
}
