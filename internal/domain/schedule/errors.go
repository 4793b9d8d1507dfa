package schedule

import "errors"

var (
	ErrScheduleNotFound         = errors.New("schedule not found")
	ErrAssignmentNotFound       = errors.New("employee has no active schedule assignment")
	ErrActiveAssignmentExists   = errors.New("employee already has an active schedule assignment")
	ErrAssignmentNotArchived    = errors.New("schedule assignment is not archived")
	ErrScheduleInUse            = errors.New("schedule has active assignments and cannot be archived")
	ErrScheduleAlreadyArchived  = errors.New("schedule is already archived")
	ErrScheduleNotArchived      = errors.New("schedule is not archived")
	ErrRestoreWouldBreakOneRule = errors.New("restoring this assignment would give the employee two active schedules")
)
