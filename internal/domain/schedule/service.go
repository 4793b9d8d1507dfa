package schedule

import "context"

type ScheduleService interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, includeArchived bool) ([]ScheduleResponse, error)
	ArchiveSchedule(ctx context.Context, id string) error
	RestoreSchedule(ctx context.Context, id string) error

	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (AssignmentResponse, error)
	UnassignSchedule(ctx context.Context, assignmentID string) error

	// ScheduleForEmployee resolves the active assignment into the view the
	// attendance calculator and payroll generator consume.
	ScheduleForEmployee(ctx context.Context, employeeID string) (EmployeeScheduleView, error)
}
