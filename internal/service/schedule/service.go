package schedule

import (
	"context"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	scheduleRepo   schedule.ScheduleRepository
	assignmentRepo schedule.EmployeeScheduleRepository
	employeeRepo   employee.EmployeeRepository
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	assignmentRepo schedule.EmployeeScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:   scheduleRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func toScheduleResponse(sched schedule.AvailableSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:       sched.ID,
		Type:     sched.Type,
		TimeIn:   sched.TimeIn,
		TimeOut:  sched.TimeOut,
		WorkDays: sched.WorkDays,
		DayOff:   sched.DayOff,
		Archived: sched.DeletedAt != nil,
	}
}

func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.AvailableSchedule{
		Type:     req.Type,
		TimeIn:   req.TimeIn,
		TimeOut:  req.TimeOut,
		WorkDays: req.WorkDays,
		DayOff:   req.DayOff,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(created), nil
}

func (s *scheduleServiceImpl) ListSchedules(ctx context.Context, includeArchived bool) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toScheduleResponse(sched))
	}
	return responses, nil
}

func (s *scheduleServiceImpl) ArchiveSchedule(ctx context.Context, id string) error {
	return s.scheduleRepo.Archive(ctx, id)
}

func (s *scheduleServiceImpl) RestoreSchedule(ctx context.Context, id string) error {
	return s.scheduleRepo.Restore(ctx, id)
}

func (s *scheduleServiceImpl) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}
	if !emp.IsActive() {
		return schedule.AssignmentResponse{}, employee.ErrEmployeeArchived
	}

	sched, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}
	if !sched.IsActive() {
		return schedule.AssignmentResponse{}, schedule.ErrScheduleNotFound
	}

	created, err := s.assignmentRepo.Create(ctx, schedule.EmployeeSchedule{
		EmployeeID: req.EmployeeID,
		ScheduleID: req.ScheduleID,
	})
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	resp := toScheduleResponse(sched)
	return schedule.AssignmentResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		ScheduleID: created.ScheduleID,
		Schedule:   &resp,
	}, nil
}

func (s *scheduleServiceImpl) UnassignSchedule(ctx context.Context, assignmentID string) error {
	return s.assignmentRepo.Archive(ctx, assignmentID)
}

func (s *scheduleServiceImpl) ScheduleForEmployee(ctx context.Context, employeeID string) (schedule.EmployeeScheduleView, error) {
	assignment, err := s.assignmentRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return schedule.EmployeeScheduleView{}, err
	}

	sched := assignment.Schedule
	return schedule.EmployeeScheduleView{
		TimeIn:   sched.TimeIn,
		TimeOut:  sched.TimeOut,
		WorkDays: sched.WorkDays,
		DayOff:   sched.DayOff,
	}, nil
}
