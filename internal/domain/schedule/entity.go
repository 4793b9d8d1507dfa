package schedule

import "time"

// AvailableSchedule is a reusable shift definition. TimeIn/TimeOut are
// wall-clock "HH:MM:SS" strings; shifts where TimeOut <= TimeIn cross
// midnight.
type AvailableSchedule struct {
	ID        string
	Type      string
	TimeIn    string
	TimeOut   string
	WorkDays  []string
	DayOff    []string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (s AvailableSchedule) IsActive() bool {
	return s.DeletedAt == nil
}

// EmployeeSchedule assigns a shift definition to an employee. An employee has
// at most one active assignment at a time.
type EmployeeSchedule struct {
	ID         string
	EmployeeID string
	ScheduleID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// Joined fields
	Schedule *AvailableSchedule
}

var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
