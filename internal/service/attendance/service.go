package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
)

// lateThreshold is the company-wide cutoff for the Late day status. It is
// intentionally fixed rather than schedule-relative: the status drives the
// monthly punctuality report, while monetary lateness uses the employee's
// schedule.
const lateThreshold = "09:00"

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	scheduleSvc    schedule.ScheduleService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleSvc schedule.ScheduleService,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		scheduleSvc:    scheduleSvc,
	}
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                     att.ID,
		EmployeeID:             att.EmployeeID,
		EmployeeName:           att.EmployeeName,
		Date:                   att.Date.Format("2006-01-02"),
		TimeIn:                 att.TimeIn,
		TimeOut:                att.TimeOut,
		HoursWorked:            att.HoursWorked,
		OvertimeHours:          att.OvertimeHours,
		LateMinutes:            att.LateMinutes,
		UndertimeMinutes:       att.UndertimeMinutes,
		TardinessDeduction:     att.TardinessDeduction,
		HolidayPay:             att.HolidayPay,
		Status:                 string(att.Status),
		ApprovalStatus:         string(att.ApprovalStatus),
		OvertimeApprovalStatus: string(att.OvertimeApprovalStatus),
	}
}

// scheduleFor resolves the employee's active schedule, treating "no
// assignment" as a soft miss: schedule-dependent computations just skip.
func (s *attendanceServiceImpl) scheduleFor(ctx context.Context, employeeID string) (schedule.EmployeeScheduleView, bool, error) {
	view, err := s.scheduleSvc.ScheduleForEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrAssignmentNotFound) {
			return schedule.EmployeeScheduleView{}, false, nil
		}
		return schedule.EmployeeScheduleView{}, false, err
	}
	return view, true, nil
}

func (s *attendanceServiceImpl) TimeIn(ctx context.Context, req attendance.TimeInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	// The daily sweep creates the Absent row; time-in only upgrades it.
	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.TimeIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyTimedIn
	}

	timeIn := req.Time
	att.TimeIn = &timeIn

	inMin, err := ParseClock(timeIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	thresholdMin, _ := ParseClock(lateThreshold)
	if inMin > thresholdMin {
		att.Status = attendance.DayStatusLate
	} else {
		att.Status = attendance.DayStatusPresent
	}

	view, hasSchedule, err := s.scheduleFor(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if hasSchedule {
		late, err := LateMinutes(view.TimeIn, timeIn)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.LateMinutes = late
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

func (s *attendanceServiceImpl) TimeOut(ctx context.Context, req attendance.TimeOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.TimeIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotTimedIn
	}
	if att.TimeOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyTimedOut
	}

	timeOut := req.Time
	att.TimeOut = &timeOut

	hours, err := HoursWorked(*att.TimeIn, timeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	overtime, err := OvertimeBeyondStandardDay(*att.TimeIn, timeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	att.HoursWorked = hours
	att.OvertimeHours = overtime

	rate, err := s.employeeRepo.HourlyRateByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	view, hasSchedule, err := s.scheduleFor(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if hasSchedule {
		undertime, err := UndertimeMinutes(view.TimeOut, timeOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.UndertimeMinutes = undertime

		ded := ComputeDeductions(att.LateMinutes, att.UndertimeMinutes, 0, rate)
		att.TardinessDeduction = ded.Tardiness.Add(ded.Undertime)

		if isRestDay(date, view) {
			att.HolidayPay = HolidayPay(hours, rate, HolidayNone, true)
		}
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

// isRestDay reports whether the date's weekday is outside the employee's
// work days or explicitly listed as a day off.
func isRestDay(date time.Time, view schedule.EmployeeScheduleView) bool {
	day := date.Weekday().String()
	for _, off := range view.DayOff {
		if off == day {
			return true
		}
	}
	for _, work := range view.WorkDays {
		if work == day {
			return false
		}
	}
	return true
}

func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, toAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *attendanceServiceImpl) setApproval(ctx context.Context, id string, status attendance.ApprovalStatus) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.ApprovalStatus != attendance.ApprovalPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	att.ApprovalStatus = status
	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

func (s *attendanceServiceImpl) Approve(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.setApproval(ctx, id, attendance.ApprovalApproved)
}

func (s *attendanceServiceImpl) Reject(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.setApproval(ctx, id, attendance.ApprovalRejected)
}

func (s *attendanceServiceImpl) setOvertimeApproval(ctx context.Context, id string, status attendance.ApprovalStatus) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.OvertimeHours.LessThanOrEqual(decimal.Zero) {
		return attendance.AttendanceResponse{}, attendance.ErrNoOvertimeClaim
	}
	if att.OvertimeApprovalStatus != attendance.ApprovalPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	att.OvertimeApprovalStatus = status
	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

func (s *attendanceServiceImpl) ApproveOvertime(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.setOvertimeApproval(ctx, id, attendance.ApprovalApproved)
}

func (s *attendanceServiceImpl) RejectOvertime(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.setOvertimeApproval(ctx, id, attendance.ApprovalRejected)
}

func (s *attendanceServiceImpl) Archive(ctx context.Context, id string) error {
	return s.attendanceRepo.Archive(ctx, id)
}
