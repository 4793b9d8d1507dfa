package employee

import (
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	MiddleName   *string `json:"middle_name,omitempty"`
	LastName     string  `json:"last_name"`
	Department   string  `json:"department"`
	PositionID   string  `json:"position_id"`
	Role         int     `json:"role"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	HireDate     string  `json:"hire_date"`
	DOB          *string `json:"dob,omitempty"`
	Address      *string `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match YEAR-NNNNN format"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "is required"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be a known role"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	MiddleName  *string `json:"middle_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	PositionID  *string `json:"position_id,omitempty"`
	Role        *int    `json:"role,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be a known role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Page            int
	Limit           int
	Department      *string
	IncludeArchived bool
	Search          *string
}

type EmployeeResponse struct {
	ID            string           `json:"id"`
	EmployeeCode  string           `json:"employee_code"`
	FullName      string           `json:"full_name"`
	Department    string           `json:"department"`
	PositionID    string           `json:"position_id"`
	PositionTitle *string          `json:"position_title,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	Role          int              `json:"role"`
	Email         string           `json:"email"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	HireDate      string           `json:"hire_date"`
	Archived      bool             `json:"archived"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
