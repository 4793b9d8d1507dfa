package deduction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
)

type deductionServiceImpl struct {
	ruleRepo deduction.DeductionRuleRepository
}

func NewDeductionService(ruleRepo deduction.DeductionRuleRepository) deduction.DeductionService {
	return &deductionServiceImpl{ruleRepo: ruleRepo}
}

func toRuleResponse(rule deduction.DeductionRule) deduction.RuleResponse {
	resp := deduction.RuleResponse{
		ID:              rule.ID,
		Description:     rule.Description,
		Type:            string(rule.Type),
		SalaryRangeFrom: rule.SalaryRangeFrom,
		SalaryRangeTo:   rule.SalaryRangeTo,
		PercentageRate:  rule.PercentageRate,
		EmployerShare:   rule.EmployerShare,
		EmployeeShare:   rule.EmployeeShare,
		MinContribution: rule.MinContribution,
		MaxContribution: rule.MaxContribution,
		EffectiveDate:   rule.EffectiveDate.Format("2006-01-02"),
		Archived:        rule.DeletedAt != nil,
	}
	if rule.EndDate != nil {
		end := rule.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

// checkOverlap rejects a bracket that intersects any active rule of the same
// type. The excluded ID skips the rule being updated.
func (s *deductionServiceImpl) checkOverlap(ctx context.Context, candidate deduction.DeductionRule, excludeID string) error {
	existing, err := s.ruleRepo.ListActiveOfType(ctx, candidate.Type)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if candidate.OverlapsBracket(other) {
			return deduction.ErrBracketOverlap
		}
	}
	return nil
}

func (s *deductionServiceImpl) CreateRule(ctx context.Context, req deduction.CreateRuleRequest) (deduction.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RuleResponse{}, err
	}

	effective, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return deduction.RuleResponse{}, fmt.Errorf("failed to parse effective date: %w", err)
	}

	rule := deduction.DeductionRule{
		Description:     req.Description,
		Type:            deduction.RuleType(req.Type),
		SalaryRangeFrom: req.SalaryRangeFrom,
		SalaryRangeTo:   req.SalaryRangeTo,
		PercentageRate:  req.PercentageRate,
		EmployerShare:   req.EmployerShare,
		EmployeeShare:   req.EmployeeShare,
		MinContribution: req.MinContribution,
		MaxContribution: req.MaxContribution,
		EffectiveDate:   effective,
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return deduction.RuleResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		rule.EndDate = &end
	}

	if err := s.checkOverlap(ctx, rule, ""); err != nil {
		return deduction.RuleResponse{}, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return deduction.RuleResponse{}, err
	}
	return toRuleResponse(created), nil
}

func (s *deductionServiceImpl) GetRule(ctx context.Context, id string) (deduction.RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return deduction.RuleResponse{}, err
	}
	return toRuleResponse(rule), nil
}

func (s *deductionServiceImpl) ListRules(ctx context.Context, includeArchived bool) ([]deduction.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	responses := make([]deduction.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toRuleResponse(rule))
	}
	return responses, nil
}

func (s *deductionServiceImpl) UpdateRule(ctx context.Context, req deduction.UpdateRuleRequest) (deduction.RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.RuleResponse{}, err
	}
	if rule.DeletedAt != nil {
		return deduction.RuleResponse{}, deduction.ErrRuleNotFound
	}

	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.SalaryRangeFrom != nil {
		rule.SalaryRangeFrom = *req.SalaryRangeFrom
	}
	if req.SalaryRangeTo != nil {
		rule.SalaryRangeTo = *req.SalaryRangeTo
	}
	if req.PercentageRate != nil {
		rule.PercentageRate = *req.PercentageRate
	}
	if req.EmployerShare != nil {
		rule.EmployerShare = *req.EmployerShare
	}
	if req.EmployeeShare != nil {
		rule.EmployeeShare = *req.EmployeeShare
	}
	if req.MinContribution != nil {
		rule.MinContribution = req.MinContribution
	}
	if req.MaxContribution != nil {
		rule.MaxContribution = req.MaxContribution
	}
	if req.EffectiveDate != nil {
		effective, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err != nil {
			return deduction.RuleResponse{}, fmt.Errorf("failed to parse effective date: %w", err)
		}
		rule.EffectiveDate = effective
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return deduction.RuleResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		rule.EndDate = &end
	}

	// Revalidate the merged rule through the create-shape checks.
	merged := deduction.CreateRuleRequest{
		Description:     rule.Description,
		Type:            string(rule.Type),
		SalaryRangeFrom: rule.SalaryRangeFrom,
		SalaryRangeTo:   rule.SalaryRangeTo,
		PercentageRate:  rule.PercentageRate,
		EmployerShare:   rule.EmployerShare,
		EmployeeShare:   rule.EmployeeShare,
		MinContribution: rule.MinContribution,
		MaxContribution: rule.MaxContribution,
		EffectiveDate:   rule.EffectiveDate.Format("2006-01-02"),
	}
	if err := merged.Validate(); err != nil {
		return deduction.RuleResponse{}, err
	}

	if err := s.checkOverlap(ctx, rule, rule.ID); err != nil {
		return deduction.RuleResponse{}, err
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return deduction.RuleResponse{}, err
	}
	return toRuleResponse(rule), nil
}

func (s *deductionServiceImpl) ArchiveRule(ctx context.Context, id string) error {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rule.DeletedAt != nil {
		return deduction.ErrRuleAlreadyRemoved
	}
	return s.ruleRepo.Archive(ctx, id)
}

// RestoreRule re-runs the overlap check before un-archiving: active rules may
// have moved into the bracket while this one was shelved.
func (s *deductionServiceImpl) RestoreRule(ctx context.Context, id string) error {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rule.DeletedAt == nil {
		return deduction.ErrRuleNotArchived
	}

	if err := s.checkOverlap(ctx, rule, rule.ID); err != nil {
		return err
	}
	return s.ruleRepo.Restore(ctx, id)
}

func (s *deductionServiceImpl) Calculate(ctx context.Context, gross decimal.Decimal) (deduction.CalculationResponse, error) {
	rules, err := s.ruleRepo.ActiveRulesFor(ctx, gross, time.Now())
	if err != nil {
		return deduction.CalculationResponse{}, err
	}

	resp := deduction.CalculationResponse{
		GrossSalary:        gross,
		Breakdown:          make([]deduction.ShareBreakdown, 0, len(rules)),
		TotalEmployeeShare: decimal.Zero,
		TotalEmployerShare: decimal.Zero,
	}
	for _, rule := range rules {
		breakdown := rule.ComputeShares(gross)
		resp.Breakdown = append(resp.Breakdown, breakdown)
		resp.TotalEmployeeShare = resp.TotalEmployeeShare.Add(breakdown.EmployeeShare)
		resp.TotalEmployerShare = resp.TotalEmployerShare.Add(breakdown.EmployerShare)
	}

	return resp, nil
}
