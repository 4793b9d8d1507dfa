package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found for this employee and date")
	ErrNotTimedIn         = errors.New("employee has not timed in on this record")
	ErrAlreadyTimedIn     = errors.New("employee has already timed in on this record")
	ErrAlreadyTimedOut    = errors.New("employee has already timed out on this record")
	ErrAlreadyProcessed   = errors.New("attendance record has already been approved or rejected")
	ErrNoOvertimeClaim    = errors.New("attendance record has no overtime to approve")
)
