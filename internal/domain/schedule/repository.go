package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, s AvailableSchedule) (AvailableSchedule, error)
	GetByID(ctx context.Context, id string) (AvailableSchedule, error)
	List(ctx context.Context, includeArchived bool) ([]AvailableSchedule, error)
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type EmployeeScheduleRepository interface {
	// Create fails with ErrActiveAssignmentExists when the employee already
	// has a non-archived assignment.
	Create(ctx context.Context, assignment EmployeeSchedule) (EmployeeSchedule, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (EmployeeSchedule, error)
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
