package payroll

import "errors"

var (
	ErrPayrollNotFound   = errors.New("payroll record not found")
	ErrBatchExists       = errors.New("a payroll batch already exists for this period")
	ErrInvalidTransition = errors.New("payroll is not in a state that allows this transition")
	ErrNotEditable       = errors.New("payroll can only be edited while rejected")
	ErrRemarksRequired   = errors.New("remarks are required when rejecting a payroll")
)
