package schedule

import (
	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Type     string   `json:"type"`
	TimeIn   string   `json:"time_in"`
	TimeOut  string   `json:"time_out"`
	WorkDays []string `json:"work_days"`
	DayOff   []string `json:"day_off"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if !validator.IsValidTimeOfDay(r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be in HH:MM or HH:MM:SS format"})
	}
	if !validator.IsValidTimeOfDay(r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be in HH:MM or HH:MM:SS format"})
	}
	if len(r.WorkDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "work_days", Message: "at least one work day is required"})
	}
	for _, d := range r.WorkDays {
		if !validator.IsInSlice(d, DayNames) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "contains an unknown day name"})
			break
		}
	}
	for _, d := range r.DayOff {
		if !validator.IsInSlice(d, DayNames) {
			errs = append(errs, validator.ValidationError{Field: "day_off", Message: "contains an unknown day name"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	EmployeeID string `json:"employee_id"`
	ScheduleID string `json:"schedule_id"`
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	TimeIn   string   `json:"time_in"`
	TimeOut  string   `json:"time_out"`
	WorkDays []string `json:"work_days"`
	DayOff   []string `json:"day_off"`
	Archived bool     `json:"archived"`
}

type AssignmentResponse struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employee_id"`
	ScheduleID string            `json:"schedule_id"`
	Schedule   *ScheduleResponse `json:"schedule,omitempty"`
}

// EmployeeScheduleView is what downstream calculators consume: the resolved
// shift window and day sets for one employee.
type EmployeeScheduleView struct {
	TimeIn   string   `json:"time_in"`
	TimeOut  string   `json:"time_out"`
	WorkDays []string `json:"work_days"`
	DayOff   []string `json:"day_off"`
}
