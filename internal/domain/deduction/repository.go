package deduction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DeductionRuleRepository interface {
	Create(ctx context.Context, rule DeductionRule) (DeductionRule, error)
	GetByID(ctx context.Context, id string) (DeductionRule, error)
	List(ctx context.Context, includeArchived bool) ([]DeductionRule, error)
	Update(ctx context.Context, rule DeductionRule) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error

	// ListActiveOfType returns non-archived rules of one type, for overlap
	// checking.
	ListActiveOfType(ctx context.Context, ruleType RuleType) ([]DeductionRule, error)

	// ActiveRulesFor returns non-archived rules whose bracket contains gross
	// and whose effectivity window contains asOf.
	ActiveRulesFor(ctx context.Context, gross decimal.Decimal, asOf time.Time) ([]DeductionRule, error)
}
