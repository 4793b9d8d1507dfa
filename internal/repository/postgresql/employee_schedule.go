package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type employeeScheduleRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeScheduleRepository(db *database.DB) schedule.EmployeeScheduleRepository {
	return &employeeScheduleRepositoryImpl{db: db}
}

// Create implements schedule.EmployeeScheduleRepository.
//
// The one-active-assignment-per-employee rule is enforced by a partial unique
// index on (employee_id) WHERE deleted_at IS NULL, so concurrent assigns
// cannot both land.
func (e *employeeScheduleRepositoryImpl) Create(ctx context.Context, assignment schedule.EmployeeSchedule) (schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employee_schedules (employee_id, schedule_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	created := assignment
	err := q.QueryRow(ctx, query, assignment.EmployeeID, assignment.ScheduleID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_schedules_active") {
			return schedule.EmployeeSchedule{}, schedule.ErrActiveAssignmentExists
		}
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to assign schedule: %w", err)
	}

	return created, nil
}

// GetActiveByEmployeeID implements schedule.EmployeeScheduleRepository.
func (e *employeeScheduleRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT es.id, es.employee_id, es.schedule_id, es.created_at, es.updated_at, es.deleted_at,
			s.id, s.type, s.time_in, s.time_out, s.work_days, s.day_off,
			s.created_at, s.updated_at, s.deleted_at
		FROM employee_schedules es
		JOIN available_schedules s ON s.id = es.schedule_id
		WHERE es.employee_id = $1 AND es.deleted_at IS NULL
	`

	var assignment schedule.EmployeeSchedule
	var sched schedule.AvailableSchedule
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&assignment.ID, &assignment.EmployeeID, &assignment.ScheduleID,
		&assignment.CreatedAt, &assignment.UpdatedAt, &assignment.DeletedAt,
		&sched.ID, &sched.Type, &sched.TimeIn, &sched.TimeOut,
		&sched.WorkDays, &sched.DayOff, &sched.CreatedAt, &sched.UpdatedAt, &sched.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.EmployeeSchedule{}, schedule.ErrAssignmentNotFound
		}
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to get active assignment for employee %s: %w", employeeID, err)
	}

	assignment.Schedule = &sched
	return assignment, nil
}

// Archive implements schedule.EmployeeScheduleRepository.
func (e *employeeScheduleRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employee_schedules
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to archive assignment with id %s: %w", id, err)
	}

	return nil
}

// Restore implements schedule.EmployeeScheduleRepository.
func (e *employeeScheduleRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employee_schedules
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id
	`

	var restoredID string
	err := q.QueryRow(ctx, query, id).Scan(&restoredID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrAssignmentNotArchived
		}
		if strings.Contains(err.Error(), "uk_employee_schedules_active") {
			return schedule.ErrRestoreWouldBreakOneRule
		}
		return fmt.Errorf("failed to restore assignment with id %s: %w", id, err)
	}

	return nil
}
