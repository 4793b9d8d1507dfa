package deduction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
)

type fakeRuleRepo struct {
	deduction.DeductionRuleRepository
	rules    map[string]deduction.DeductionRule
	nextID   int
	restored []string
}

func newFakeRuleRepo(rules ...deduction.DeductionRule) *fakeRuleRepo {
	repo := &fakeRuleRepo{rules: make(map[string]deduction.DeductionRule)}
	for _, rule := range rules {
		repo.rules[rule.ID] = rule
	}
	return repo
}

func (f *fakeRuleRepo) Create(_ context.Context, rule deduction.DeductionRule) (deduction.DeductionRule, error) {
	f.nextID++
	rule.ID = fmt.Sprintf("rule-%d", f.nextID)
	f.rules[rule.ID] = rule
	return rule, nil
}

func (f *fakeRuleRepo) GetByID(_ context.Context, id string) (deduction.DeductionRule, error) {
	rule, ok := f.rules[id]
	if !ok {
		return deduction.DeductionRule{}, deduction.ErrRuleNotFound
	}
	return rule, nil
}

func (f *fakeRuleRepo) Update(_ context.Context, rule deduction.DeductionRule) error {
	f.rules[rule.ID] = rule
	return nil
}

func (f *fakeRuleRepo) Archive(_ context.Context, id string) error {
	rule := f.rules[id]
	now := time.Now()
	rule.DeletedAt = &now
	f.rules[id] = rule
	return nil
}

func (f *fakeRuleRepo) Restore(_ context.Context, id string) error {
	rule := f.rules[id]
	rule.DeletedAt = nil
	f.rules[id] = rule
	f.restored = append(f.restored, id)
	return nil
}

func (f *fakeRuleRepo) ListActiveOfType(_ context.Context, ruleType deduction.RuleType) ([]deduction.DeductionRule, error) {
	var matched []deduction.DeductionRule
	for _, rule := range f.rules {
		if rule.Type == ruleType && rule.DeletedAt == nil {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func (f *fakeRuleRepo) ActiveRulesFor(_ context.Context, gross decimal.Decimal, asOf time.Time) ([]deduction.DeductionRule, error) {
	var matched []deduction.DeductionRule
	for _, rule := range f.rules {
		if rule.DeletedAt == nil && rule.ContainsSalary(gross) && rule.InEffectOn(asOf) {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func sssBracket(id, from, to string) deduction.DeductionRule {
	return deduction.DeductionRule{
		ID:              id,
		Description:     "SSS bracket " + from,
		Type:            deduction.RuleTypeSSS,
		SalaryRangeFrom: decimal.RequireFromString(from),
		SalaryRangeTo:   decimal.RequireFromString(to),
		PercentageRate:  decimal.NewFromInt(10),
		EmployerShare:   decimal.NewFromInt(5),
		EmployeeShare:   decimal.NewFromInt(5),
		EffectiveDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func createRequest(from, to string) deduction.CreateRuleRequest {
	return deduction.CreateRuleRequest{
		Description:     "SSS new bracket",
		Type:            "SSS",
		SalaryRangeFrom: decimal.RequireFromString(from),
		SalaryRangeTo:   decimal.RequireFromString(to),
		PercentageRate:  decimal.NewFromInt(10),
		EmployerShare:   decimal.NewFromInt(5),
		EmployeeShare:   decimal.NewFromInt(5),
		EffectiveDate:   "2025-01-01",
	}
}

func TestCreateRule(t *testing.T) {
	repo := newFakeRuleRepo(sssBracket("rule-a", "0", "10000"))
	svc := NewDeductionService(repo)

	resp, err := svc.CreateRule(context.Background(), createRequest("10000.01", "20000"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "SSS", resp.Type)
	assert.False(t, resp.Archived)
}

func TestCreateRuleOverlap(t *testing.T) {
	repo := newFakeRuleRepo(sssBracket("rule-a", "0", "10000"))
	svc := NewDeductionService(repo)

	_, err := svc.CreateRule(context.Background(), createRequest("10000", "20000"))
	assert.ErrorIs(t, err, deduction.ErrBracketOverlap)
}

func TestCreateRuleOverlapIgnoresOtherTypes(t *testing.T) {
	philHealth := sssBracket("rule-ph", "0", "100000")
	philHealth.Type = deduction.RuleTypePhilHealth
	svc := NewDeductionService(newFakeRuleRepo(philHealth))

	_, err := svc.CreateRule(context.Background(), createRequest("0", "100000"))
	assert.NoError(t, err)
}

func TestUpdateRuleOverlapExcludesSelf(t *testing.T) {
	repo := newFakeRuleRepo(sssBracket("rule-a", "0", "10000"))
	svc := NewDeductionService(repo)

	// Shrinking the rule's own bracket overlaps only itself, which is fine.
	to := decimal.RequireFromString("9000")
	resp, err := svc.UpdateRule(context.Background(), deduction.UpdateRuleRequest{ID: "rule-a", SalaryRangeTo: &to})
	require.NoError(t, err)
	assert.True(t, resp.SalaryRangeTo.Equal(to))
}

func TestUpdateRuleOverlapAgainstOther(t *testing.T) {
	repo := newFakeRuleRepo(
		sssBracket("rule-a", "0", "10000"),
		sssBracket("rule-b", "10000.01", "20000"),
	)
	svc := NewDeductionService(repo)

	to := decimal.RequireFromString("15000")
	_, err := svc.UpdateRule(context.Background(), deduction.UpdateRuleRequest{ID: "rule-a", SalaryRangeTo: &to})
	assert.ErrorIs(t, err, deduction.ErrBracketOverlap)
}

func TestArchiveRuleTwice(t *testing.T) {
	repo := newFakeRuleRepo(sssBracket("rule-a", "0", "10000"))
	svc := NewDeductionService(repo)

	require.NoError(t, svc.ArchiveRule(context.Background(), "rule-a"))
	assert.ErrorIs(t, svc.ArchiveRule(context.Background(), "rule-a"), deduction.ErrRuleAlreadyRemoved)
}

func TestRestoreRuleReChecksOverlap(t *testing.T) {
	archived := sssBracket("rule-a", "0", "10000")
	now := time.Now()
	archived.DeletedAt = &now
	repo := newFakeRuleRepo(
		archived,
		// Took over the bracket while rule-a was shelved.
		sssBracket("rule-b", "0", "10000"),
	)
	svc := NewDeductionService(repo)

	assert.ErrorIs(t, svc.RestoreRule(context.Background(), "rule-a"), deduction.ErrBracketOverlap)
	assert.Empty(t, repo.restored)
}

func TestRestoreRule(t *testing.T) {
	archived := sssBracket("rule-a", "0", "10000")
	now := time.Now()
	archived.DeletedAt = &now
	repo := newFakeRuleRepo(archived)
	svc := NewDeductionService(repo)

	require.NoError(t, svc.RestoreRule(context.Background(), "rule-a"))
	assert.Equal(t, []string{"rule-a"}, repo.restored)
}

func TestCalculate(t *testing.T) {
	philHealth := sssBracket("rule-ph", "0", "100000")
	philHealth.Type = deduction.RuleTypePhilHealth
	philHealth.PercentageRate = decimal.NewFromInt(4)
	philHealth.EmployerShare = decimal.NewFromInt(2)
	philHealth.EmployeeShare = decimal.NewFromInt(2)

	repo := newFakeRuleRepo(sssBracket("rule-sss", "0", "100000"), philHealth)
	svc := NewDeductionService(repo)

	resp, err := svc.Calculate(context.Background(), decimal.NewFromInt(20000))
	require.NoError(t, err)

	assert.Len(t, resp.Breakdown, 2)
	// 5% of 20000 from the SSS rule plus 2% from the PhilHealth rule.
	assert.True(t, resp.TotalEmployeeShare.Equal(decimal.NewFromInt(1400)), "employee %s", resp.TotalEmployeeShare)
	assert.True(t, resp.TotalEmployerShare.Equal(decimal.NewFromInt(1400)), "employer %s", resp.TotalEmployerShare)
}
