package deduction

import (
	"context"

	"github.com/shopspring/decimal"
)

type DeductionService interface {
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	GetRule(ctx context.Context, id string) (RuleResponse, error)
	ListRules(ctx context.Context, includeArchived bool) ([]RuleResponse, error)
	UpdateRule(ctx context.Context, req UpdateRuleRequest) (RuleResponse, error)
	ArchiveRule(ctx context.Context, id string) error
	RestoreRule(ctx context.Context, id string) error

	// Calculate resolves the active rules for a gross salary as of now and
	// returns the per-rule share breakdown.
	Calculate(ctx context.Context, gross decimal.Decimal) (CalculationResponse, error)
}
