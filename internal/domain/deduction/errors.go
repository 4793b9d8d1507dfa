package deduction

import "errors"

var (
	ErrRuleNotFound       = errors.New("deduction rule not found")
	ErrBracketOverlap     = errors.New("salary bracket overlaps an active rule of the same type")
	ErrRuleNotArchived    = errors.New("deduction rule is not archived")
	ErrRuleAlreadyRemoved = errors.New("deduction rule is already archived")
)
