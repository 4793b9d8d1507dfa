package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	byID    map[string]attendance.Attendance
	updated []attendance.Attendance
}

func newFakeAttendanceRepo(rows ...attendance.Attendance) *fakeAttendanceRepo {
	repo := &fakeAttendanceRepo{byID: make(map[string]attendance.Attendance)}
	for _, row := range rows {
		repo.byID[row.ID] = row
	}
	return repo
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.byID[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, att := range f.byID {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	f.byID[att.ID] = att
	f.updated = append(f.updated, att)
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	rate decimal.Decimal
}

func (f *fakeEmployeeRepo) HourlyRateByEmployeeID(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.rate, nil
}

type fakeScheduleService struct {
	schedule.ScheduleService
	view    schedule.EmployeeScheduleView
	hasView bool
}

func (f *fakeScheduleService) ScheduleForEmployee(_ context.Context, _ string) (schedule.EmployeeScheduleView, error) {
	if !f.hasView {
		return schedule.EmployeeScheduleView{}, schedule.ErrAssignmentNotFound
	}
	return f.view, nil
}

func weekdaySchedule() schedule.EmployeeScheduleView {
	return schedule.EmployeeScheduleView{
		TimeIn:   "08:00",
		TimeOut:  "17:00",
		WorkDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		DayOff:   []string{"Saturday", "Sunday"},
	}
}

func newTestService(repo *fakeAttendanceRepo, scheduleSvc *fakeScheduleService) attendance.AttendanceService {
	return NewAttendanceService(repo, &fakeEmployeeRepo{rate: decimal.NewFromInt(100)}, scheduleSvc)
}

// 2025-06-02 is a Monday.
func sweptRow() attendance.Attendance {
	return attendance.Attendance{
		ID:                     "att-1",
		EmployeeID:             "emp-1",
		Date:                   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Status:                 attendance.DayStatusAbsent,
		ApprovalStatus:         attendance.ApprovalPending,
		OvertimeApprovalStatus: attendance.ApprovalPending,
	}
}

func TestTimeInOnTime(t *testing.T) {
	repo := newFakeAttendanceRepo(sweptRow())
	svc := newTestService(repo, &fakeScheduleService{hasView: true, view: weekdaySchedule()})

	resp, err := svc.TimeIn(context.Background(), attendance.TimeInRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "08:30",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.DayStatusPresent), resp.Status)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "08:30", *resp.TimeIn)
	// 30 minutes past the 08:00 schedule is beyond the grace period.
	assert.Equal(t, 30, resp.LateMinutes)
}

func TestTimeInAfterThresholdIsLate(t *testing.T) {
	repo := newFakeAttendanceRepo(sweptRow())
	svc := newTestService(repo, &fakeScheduleService{})

	resp, err := svc.TimeIn(context.Background(), attendance.TimeInRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "09:01",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.DayStatusLate), resp.Status)
	// No schedule assigned, so no monetary late minutes.
	assert.Equal(t, 0, resp.LateMinutes)
}

func TestTimeInWithoutSweptRow(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), &fakeScheduleService{})

	_, err := svc.TimeIn(context.Background(), attendance.TimeInRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "08:00",
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestTimeInTwice(t *testing.T) {
	row := sweptRow()
	in := "08:00"
	row.TimeIn = &in
	row.Status = attendance.DayStatusPresent
	svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})

	_, err := svc.TimeIn(context.Background(), attendance.TimeInRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "08:05",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyTimedIn)
}

func TestTimeOutComputesDay(t *testing.T) {
	row := sweptRow()
	in := "08:00"
	row.TimeIn = &in
	row.Status = attendance.DayStatusPresent
	repo := newFakeAttendanceRepo(row)
	svc := newTestService(repo, &fakeScheduleService{hasView: true, view: weekdaySchedule()})

	resp, err := svc.TimeOut(context.Background(), attendance.TimeOutRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "19:00",
	})
	require.NoError(t, err)

	// 11 elapsed hours lose the hour-long break; 2 hours beyond the
	// standard day are an overtime claim.
	assert.True(t, resp.HoursWorked.Equal(decimal.NewFromInt(10)), "hours %s", resp.HoursWorked)
	assert.True(t, resp.OvertimeHours.Equal(decimal.NewFromInt(2)), "overtime %s", resp.OvertimeHours)
	assert.Equal(t, 0, resp.UndertimeMinutes)
	assert.True(t, resp.TardinessDeduction.IsZero())
	assert.True(t, resp.HolidayPay.IsZero())
}

func TestTimeOutUndertime(t *testing.T) {
	row := sweptRow()
	in := "08:00"
	row.TimeIn = &in
	row.Status = attendance.DayStatusPresent
	svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{hasView: true, view: weekdaySchedule()})

	resp, err := svc.TimeOut(context.Background(), attendance.TimeOutRequest{
		EmployeeID: "emp-1", Date: "2025-06-02", Time: "16:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.UndertimeMinutes)
	// One undertime hour at the 100 rate.
	assert.True(t, resp.TardinessDeduction.Equal(decimal.NewFromInt(100)), "deduction %s", resp.TardinessDeduction)
}

func TestTimeOutOnRestDay(t *testing.T) {
	row := sweptRow()
	row.Date = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC) // Saturday
	in := "08:00"
	row.TimeIn = &in
	row.Status = attendance.DayStatusPresent
	svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{hasView: true, view: weekdaySchedule()})

	resp, err := svc.TimeOut(context.Background(), attendance.TimeOutRequest{
		EmployeeID: "emp-1", Date: "2025-06-07", Time: "12:00",
	})
	require.NoError(t, err)

	// 4 hours at 130% of the 100 rate.
	assert.True(t, resp.HolidayPay.Equal(decimal.NewFromInt(520)), "holiday pay %s", resp.HolidayPay)
}

func TestTimeOutGuards(t *testing.T) {
	t.Run("not timed in", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(sweptRow()), &fakeScheduleService{})
		_, err := svc.TimeOut(context.Background(), attendance.TimeOutRequest{
			EmployeeID: "emp-1", Date: "2025-06-02", Time: "17:00",
		})
		assert.ErrorIs(t, err, attendance.ErrNotTimedIn)
	})

	t.Run("already timed out", func(t *testing.T) {
		row := sweptRow()
		in, out := "08:00", "17:00"
		row.TimeIn, row.TimeOut = &in, &out
		svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})
		_, err := svc.TimeOut(context.Background(), attendance.TimeOutRequest{
			EmployeeID: "emp-1", Date: "2025-06-02", Time: "18:00",
		})
		assert.ErrorIs(t, err, attendance.ErrAlreadyTimedOut)
	})
}

func TestApprovalGuards(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(sweptRow()), &fakeScheduleService{})
		resp, err := svc.Approve(context.Background(), "att-1")
		require.NoError(t, err)
		assert.Equal(t, string(attendance.ApprovalApproved), resp.ApprovalStatus)
	})

	t.Run("approve twice", func(t *testing.T) {
		row := sweptRow()
		row.ApprovalStatus = attendance.ApprovalApproved
		svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})
		_, err := svc.Approve(context.Background(), "att-1")
		assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
	})

	t.Run("reject already rejected", func(t *testing.T) {
		row := sweptRow()
		row.ApprovalStatus = attendance.ApprovalRejected
		svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})
		_, err := svc.Reject(context.Background(), "att-1")
		assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
	})
}

func TestOvertimeApprovalGuards(t *testing.T) {
	t.Run("no overtime claim", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(sweptRow()), &fakeScheduleService{})
		_, err := svc.ApproveOvertime(context.Background(), "att-1")
		assert.ErrorIs(t, err, attendance.ErrNoOvertimeClaim)
	})

	t.Run("approve claim", func(t *testing.T) {
		row := sweptRow()
		row.OvertimeHours = decimal.NewFromInt(2)
		svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})
		resp, err := svc.ApproveOvertime(context.Background(), "att-1")
		require.NoError(t, err)
		assert.Equal(t, string(attendance.ApprovalApproved), resp.OvertimeApprovalStatus)
	})

	t.Run("approve claim twice", func(t *testing.T) {
		row := sweptRow()
		row.OvertimeHours = decimal.NewFromInt(2)
		row.OvertimeApprovalStatus = attendance.ApprovalApproved
		svc := newTestService(newFakeAttendanceRepo(row), &fakeScheduleService{})
		_, err := svc.RejectOvertime(context.Background(), "att-1")
		assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
	})
}
