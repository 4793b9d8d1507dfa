package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.time_in, a.time_out,
	a.hours_worked, a.overtime_hours, a.late_minutes, a.undertime_minutes,
	a.tardiness_deduction, a.absence_deduction, a.holiday_pay,
	a.status, a.approval_status, a.overtime_approval_status,
	a.created_at, a.updated_at, a.deleted_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.HoursWorked, &att.OvertimeHours, &att.LateMinutes, &att.UndertimeMinutes,
		&att.TardinessDeduction, &att.AbsenceDeduction, &att.HolidayPay,
		&att.Status, &att.ApprovalStatus, &att.OvertimeApprovalStatus,
		&att.CreatedAt, &att.UpdatedAt, &att.DeletedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, time_in, time_out, hours_worked, overtime_hours,
			late_minutes, undertime_minutes, tardiness_deduction, absence_deduction,
			holiday_pay, status, approval_status, overtime_approval_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id, created_at, updated_at
	`

	created := att
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.TimeIn, att.TimeOut, att.HoursWorked,
		att.OvertimeHours, att.LateMinutes, att.UndertimeMinutes,
		att.TardinessDeduction, att.AbsenceDeduction, att.HolidayPay,
		att.Status, att.ApprovalStatus, att.OvertimeApprovalStatus,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1 AND a.deleted_at IS NULL
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance with id %s: %w", id, err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2 AND a.deleted_at IS NULL
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for employee %s on %s: %w",
			employeeID, date.Format("2006-01-02"), err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET time_in = $1, time_out = $2, hours_worked = $3, overtime_hours = $4,
			late_minutes = $5, undertime_minutes = $6, tardiness_deduction = $7,
			absence_deduction = $8, holiday_pay = $9, status = $10,
			approval_status = $11, overtime_approval_status = $12, updated_at = NOW()
		WHERE id = $13 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.TimeIn, att.TimeOut, att.HoursWorked, att.OvertimeHours,
		att.LateMinutes, att.UndertimeMinutes, att.TardinessDeduction,
		att.AbsenceDeduction, att.HolidayPay, att.Status,
		att.ApprovalStatus, att.OvertimeApprovalStatus, att.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance with id %s: %w", att.ID, err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.deleted_at IS NULL"}
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `,
			CONCAT(e.first_name, ' ', e.last_name), e.department
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.employee_id
	`
	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.HoursWorked, &att.OvertimeHours, &att.LateMinutes, &att.UndertimeMinutes,
			&att.TardinessDeduction, &att.AbsenceDeduction, &att.HolidayPay,
			&att.Status, &att.ApprovalStatus, &att.OvertimeApprovalStatus,
			&att.CreatedAt, &att.UpdatedAt, &att.DeletedAt,
			&att.EmployeeName, &att.Department,
		)
		if err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3 AND a.deleted_at IS NULL
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, att)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}

// Archive implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to archive attendance with id %s: %w", id, err)
	}

	return nil
}

// BulkCreateAbsences implements attendance.AttendanceRepository. Rows that
// collide with an existing (employee_id, date) pair are skipped, so the daily
// sweep is safe to rerun.
func (a *attendanceRepositoryImpl) BulkCreateAbsences(ctx context.Context, rowsToInsert []attendance.Attendance) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, approval_status, overtime_approval_status, absence_deduction)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	inserted := 0
	for _, att := range rowsToInsert {
		tag, err := q.Exec(ctx, query,
			att.EmployeeID, att.Date, att.Status,
			att.ApprovalStatus, att.OvertimeApprovalStatus, att.AbsenceDeduction,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert absence for employee %s: %w", att.EmployeeID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
