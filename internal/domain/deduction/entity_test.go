package deduction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeShares(t *testing.T) {
	rule := DeductionRule{
		ID:             "rule-1",
		Description:    "SSS regular bracket",
		Type:           RuleTypeSSS,
		PercentageRate: dec("10"),
		EmployerShare:  dec("7"),
		EmployeeShare:  dec("3"),
	}

	breakdown := rule.ComputeShares(dec("20000"))

	assert.True(t, breakdown.TotalContribution.Equal(dec("2000")), "total %s", breakdown.TotalContribution)
	assert.True(t, breakdown.EmployeeShare.Equal(dec("600")), "employee %s", breakdown.EmployeeShare)
	assert.True(t, breakdown.EmployerShare.Equal(dec("1400")), "employer %s", breakdown.EmployerShare)
}

func TestComputeSharesMinClamp(t *testing.T) {
	rule := DeductionRule{
		PercentageRate:  dec("4"),
		EmployerShare:   dec("2"),
		EmployeeShare:   dec("2"),
		MinContribution: decPtr("500"),
	}

	// 4% of 10000 is 400, below the floor, so the floor applies and the
	// shares split the clamped amount.
	breakdown := rule.ComputeShares(dec("10000"))

	assert.True(t, breakdown.TotalContribution.Equal(dec("500")), "total %s", breakdown.TotalContribution)
	assert.True(t, breakdown.EmployeeShare.Equal(dec("250")), "employee %s", breakdown.EmployeeShare)
	assert.True(t, breakdown.EmployerShare.Equal(dec("250")), "employer %s", breakdown.EmployerShare)
}

func TestComputeSharesMaxClampWins(t *testing.T) {
	rule := DeductionRule{
		PercentageRate:  dec("10"),
		EmployerShare:   dec("5"),
		EmployeeShare:   dec("5"),
		MinContribution: decPtr("3000"),
		MaxContribution: decPtr("2000"),
	}

	// Both clamps trigger on 10000 (base 1000); the max is applied last.
	breakdown := rule.ComputeShares(dec("10000"))

	assert.True(t, breakdown.TotalContribution.Equal(dec("2000")), "total %s", breakdown.TotalContribution)
	assert.True(t, breakdown.EmployeeShare.Equal(dec("1000")), "employee %s", breakdown.EmployeeShare)
}

func TestContainsSalary(t *testing.T) {
	rule := DeductionRule{
		SalaryRangeFrom: dec("10000"),
		SalaryRangeTo:   dec("20000"),
	}

	assert.True(t, rule.ContainsSalary(dec("10000")))
	assert.True(t, rule.ContainsSalary(dec("20000")))
	assert.True(t, rule.ContainsSalary(dec("15000")))
	assert.False(t, rule.ContainsSalary(dec("9999.99")))
	assert.False(t, rule.ContainsSalary(dec("20000.01")))
}

func TestOverlapsBracket(t *testing.T) {
	base := DeductionRule{SalaryRangeFrom: dec("10000"), SalaryRangeTo: dec("20000")}

	assert.True(t, base.OverlapsBracket(DeductionRule{SalaryRangeFrom: dec("15000"), SalaryRangeTo: dec("25000")}))
	// Touching endpoints count as overlap, bounds are inclusive.
	assert.True(t, base.OverlapsBracket(DeductionRule{SalaryRangeFrom: dec("20000"), SalaryRangeTo: dec("30000")}))
	assert.False(t, base.OverlapsBracket(DeductionRule{SalaryRangeFrom: dec("20000.01"), SalaryRangeTo: dec("30000")}))
}

func TestInEffectOn(t *testing.T) {
	effective := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	openEnded := DeductionRule{EffectiveDate: effective}
	assert.True(t, openEnded.InEffectOn(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, openEnded.InEffectOn(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

	bounded := DeductionRule{EffectiveDate: effective, EndDate: &end}
	assert.True(t, bounded.InEffectOn(end))
	assert.False(t, bounded.InEffectOn(end.AddDate(0, 0, 1)))
}

func TestCreateRuleRequestValidate(t *testing.T) {
	valid := CreateRuleRequest{
		Description:     "PhilHealth standard",
		Type:            "PhilHealth",
		SalaryRangeFrom: dec("0"),
		SalaryRangeTo:   dec("100000"),
		PercentageRate:  dec("5"),
		EmployerShare:   dec("2.5"),
		EmployeeShare:   dec("2.5"),
		EffectiveDate:   "2025-01-01",
	}
	assert.NoError(t, valid.Validate())

	sharesMismatch := valid
	sharesMismatch.EmployerShare = dec("3")
	assert.Error(t, sharesMismatch.Validate())

	invertedRange := valid
	invertedRange.SalaryRangeFrom = dec("200000")
	assert.Error(t, invertedRange.Validate())

	unknownType := valid
	unknownType.Type = "GSIS"
	assert.Error(t, unknownType.Validate())

	zeroRate := valid
	zeroRate.PercentageRate = dec("0")
	zeroRate.EmployerShare = dec("0")
	zeroRate.EmployeeShare = dec("0")
	assert.Error(t, zeroRate.Validate())

	minAboveMax := valid
	minAboveMax.MinContribution = decPtr("900")
	minAboveMax.MaxContribution = decPtr("800")
	assert.Error(t, minAboveMax.Validate())
}
