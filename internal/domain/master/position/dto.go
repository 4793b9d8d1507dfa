package position

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type Position struct {
	ID         string
	Title      string
	Department string
	Branch     string
	HourlyRate decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type CreatePositionRequest struct {
	Title      string          `json:"title"`
	Department string          `json:"department"`
	Branch     string          `json:"branch"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Branch) {
		errs = append(errs, validator.ValidationError{Field: "branch", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID         string           `json:"-"`
	Title      *string          `json:"title,omitempty"`
	Department *string          `json:"department,omitempty"`
	Branch     *string          `json:"branch,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Department string          `json:"department"`
	Branch     string          `json:"branch"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Archived   bool            `json:"archived"`
}
