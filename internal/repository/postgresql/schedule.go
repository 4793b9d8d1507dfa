package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Create(ctx context.Context, sched schedule.AvailableSchedule) (schedule.AvailableSchedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO available_schedules (type, time_in, time_out, work_days, day_off)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	created := sched
	err := q.QueryRow(ctx, query,
		sched.Type, sched.TimeIn, sched.TimeOut, sched.WorkDays, sched.DayOff,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return schedule.AvailableSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.AvailableSchedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, type, time_in, time_out, work_days, day_off, created_at, updated_at, deleted_at
		FROM available_schedules
		WHERE id = $1
	`

	var sched schedule.AvailableSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&sched.ID, &sched.Type, &sched.TimeIn, &sched.TimeOut,
		&sched.WorkDays, &sched.DayOff, &sched.CreatedAt, &sched.UpdatedAt, &sched.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.AvailableSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.AvailableSchedule{}, fmt.Errorf("failed to get schedule with id %s: %w", id, err)
	}

	return sched, nil
}

// List implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) List(ctx context.Context, includeArchived bool) ([]schedule.AvailableSchedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, type, time_in, time_out, work_days, day_off, created_at, updated_at, deleted_at
		FROM available_schedules
	`
	if !includeArchived {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY type"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.AvailableSchedule
	for rows.Next() {
		var sched schedule.AvailableSchedule
		err := rows.Scan(
			&sched.ID, &sched.Type, &sched.TimeIn, &sched.TimeOut,
			&sched.WorkDays, &sched.DayOff, &sched.CreatedAt, &sched.UpdatedAt, &sched.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Archive implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE available_schedules
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to archive schedule with id %s: %w", id, err)
	}

	return nil
}

// Restore implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE available_schedules
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id
	`

	var restoredID string
	err := q.QueryRow(ctx, query, id).Scan(&restoredID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrScheduleNotArchived
		}
		return fmt.Errorf("failed to restore schedule with id %s: %w", id, err)
	}

	return nil
}
