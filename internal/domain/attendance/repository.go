package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	Update(ctx context.Context, att Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	Archive(ctx context.Context, id string) error

	// BulkCreateAbsences inserts default Absent rows, skipping employees that
	// already have a row for the date.
	BulkCreateAbsences(ctx context.Context, rows []Attendance) (int, error)
}
