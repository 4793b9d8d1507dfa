package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleType enumerates the mandatory contribution programs.
type RuleType string

const (
	RuleTypeSSS        RuleType = "SSS"
	RuleTypePhilHealth RuleType = "PhilHealth"
	RuleTypePagIBIG    RuleType = "Pag-IBIG"
)

var RuleTypeValues = []string{
	string(RuleTypeSSS),
	string(RuleTypePhilHealth),
	string(RuleTypePagIBIG),
}

// DeductionRule is one salary bracket of a contribution table. Employer and
// employee shares always sum to the percentage rate; active rules of the same
// type never have overlapping brackets.
type DeductionRule struct {
	ID              string
	Description     string
	Type            RuleType
	SalaryRangeFrom decimal.Decimal
	SalaryRangeTo   decimal.Decimal
	PercentageRate  decimal.Decimal
	EmployerShare   decimal.Decimal
	EmployeeShare   decimal.Decimal
	MinContribution *decimal.Decimal
	MaxContribution *decimal.Decimal
	EffectiveDate   time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (r DeductionRule) IsActive() bool {
	return r.DeletedAt == nil
}

// ContainsSalary reports whether gross falls inside the rule's bracket,
// bounds inclusive.
func (r DeductionRule) ContainsSalary(gross decimal.Decimal) bool {
	return gross.GreaterThanOrEqual(r.SalaryRangeFrom) && gross.LessThanOrEqual(r.SalaryRangeTo)
}

// InEffectOn reports whether the rule's [effective, end] window contains the
// date. A nil end date means open-ended.
func (r DeductionRule) InEffectOn(date time.Time) bool {
	if date.Before(r.EffectiveDate) {
		return false
	}
	if r.EndDate != nil && date.After(*r.EndDate) {
		return false
	}
	return true
}

// OverlapsBracket reports whether two salary brackets intersect. Bounds are
// inclusive on both ends, so touching endpoints count as overlap.
func (r DeductionRule) OverlapsBracket(other DeductionRule) bool {
	return r.SalaryRangeFrom.LessThanOrEqual(other.SalaryRangeTo) &&
		other.SalaryRangeFrom.LessThanOrEqual(r.SalaryRangeTo)
}

// ShareBreakdown is the result of applying one rule to a gross salary.
type ShareBreakdown struct {
	RuleID            string          `json:"rule_id"`
	Type              RuleType        `json:"type"`
	Description       string          `json:"description"`
	TotalContribution decimal.Decimal `json:"total_contribution"`
	EmployeeShare     decimal.Decimal `json:"employee_share"`
	EmployerShare     decimal.Decimal `json:"employer_share"`
}

// ComputeShares applies the rule to a gross salary: percentage of gross,
// clamped to the min then the max contribution, then split proportionally
// between employer and employee. The max clamp is applied last, so it wins if
// both would apply. Shares round to 2 decimals independently; they are not
// forced to sum exactly to the total after rounding.
func (r DeductionRule) ComputeShares(gross decimal.Decimal) ShareBreakdown {
	base := gross.Mul(r.PercentageRate).Div(decimal.NewFromInt(100))

	if r.MinContribution != nil && base.LessThan(*r.MinContribution) {
		base = *r.MinContribution
	}
	if r.MaxContribution != nil && base.GreaterThan(*r.MaxContribution) {
		base = *r.MaxContribution
	}

	employeeShare := decimal.Zero
	employerShare := decimal.Zero
	if !r.PercentageRate.IsZero() {
		employeeShare = base.Mul(r.EmployeeShare).Div(r.PercentageRate).Round(2)
		employerShare = base.Mul(r.EmployerShare).Div(r.PercentageRate).Round(2)
	}

	return ShareBreakdown{
		RuleID:            r.ID,
		Type:              r.Type,
		Description:       r.Description,
		TotalContribution: base.Round(2),
		EmployeeShare:     employeeShare,
		EmployerShare:     employerShare,
	}
}
