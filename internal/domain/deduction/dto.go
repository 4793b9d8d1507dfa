package deduction

import (
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type CreateRuleRequest struct {
	Description     string           `json:"description"`
	Type            string           `json:"type"`
	SalaryRangeFrom decimal.Decimal  `json:"salary_range_from"`
	SalaryRangeTo   decimal.Decimal  `json:"salary_range_to"`
	PercentageRate  decimal.Decimal  `json:"percentage_rate"`
	EmployerShare   decimal.Decimal  `json:"employer_share"`
	EmployeeShare   decimal.Decimal  `json:"employee_share"`
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`
	EffectiveDate   string           `json:"effective_date"`
	EndDate         *string          `json:"end_date,omitempty"`
}

// Validate collects every violated rule at once so the form can be corrected
// in a single round-trip.
func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, RuleTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of SSS, PhilHealth, Pag-IBIG"})
	}
	if r.PercentageRate.LessThanOrEqual(decimal.Zero) || r.PercentageRate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "percentage_rate", Message: "must be greater than 0 and at most 100"})
	}
	if !r.SalaryRangeFrom.LessThan(r.SalaryRangeTo) {
		errs = append(errs, validator.ValidationError{Field: "salary_range_from", Message: "must be less than salary_range_to"})
	}
	if !r.EmployerShare.Add(r.EmployeeShare).Equal(r.PercentageRate) {
		errs = append(errs, validator.ValidationError{Field: "employer_share", Message: "employer_share + employee_share must equal percentage_rate"})
	}
	if r.EmployerShare.IsNegative() || r.EmployeeShare.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "employee_share", Message: "shares must be non-negative"})
	}
	if r.MinContribution != nil && r.MaxContribution != nil && r.MinContribution.GreaterThan(*r.MaxContribution) {
		errs = append(errs, validator.ValidationError{Field: "min_contribution", Message: "must not exceed max_contribution"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID              string           `json:"-"`
	Description     *string          `json:"description,omitempty"`
	SalaryRangeFrom *decimal.Decimal `json:"salary_range_from,omitempty"`
	SalaryRangeTo   *decimal.Decimal `json:"salary_range_to,omitempty"`
	PercentageRate  *decimal.Decimal `json:"percentage_rate,omitempty"`
	EmployerShare   *decimal.Decimal `json:"employer_share,omitempty"`
	EmployeeShare   *decimal.Decimal `json:"employee_share,omitempty"`
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`
	EffectiveDate   *string          `json:"effective_date,omitempty"`
	EndDate         *string          `json:"end_date,omitempty"`
}

type RuleResponse struct {
	ID              string           `json:"id"`
	Description     string           `json:"description"`
	Type            string           `json:"type"`
	SalaryRangeFrom decimal.Decimal  `json:"salary_range_from"`
	SalaryRangeTo   decimal.Decimal  `json:"salary_range_to"`
	PercentageRate  decimal.Decimal  `json:"percentage_rate"`
	EmployerShare   decimal.Decimal  `json:"employer_share"`
	EmployeeShare   decimal.Decimal  `json:"employee_share"`
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`
	EffectiveDate   string           `json:"effective_date"`
	EndDate         *string          `json:"end_date,omitempty"`
	Archived        bool             `json:"archived"`
}

type CalculationResponse struct {
	GrossSalary        decimal.Decimal  `json:"gross_salary"`
	Breakdown          []ShareBreakdown `json:"breakdown"`
	TotalEmployeeShare decimal.Decimal  `json:"total_employee_share"`
	TotalEmployerShare decimal.Decimal  `json:"total_employer_share"`
}
