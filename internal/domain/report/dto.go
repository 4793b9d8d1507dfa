package report

import "github.com/shopspring/decimal"

// MonthlyReportResponse is consumed verbatim by the PDF/Excel export
// collaborator; its shape and field names are a contract.
type MonthlyReportResponse struct {
	Employee     ReportEmployee   `json:"employee"`
	Period       ReportPeriod     `json:"period"`
	CurrentMonth MonthStats       `json:"currentMonth"`
	Comparison   ReportComparison `json:"comparison"`
	Details      []DayDetail      `json:"details"`
}

type ReportEmployee struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
}

type ReportPeriod struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type MonthStats struct {
	Attendance   AttendanceStats   `json:"attendance"`
	WorkingHours WorkingHoursStats `json:"workingHours"`
	Punctuality  PunctualityStats  `json:"punctuality"`
	Approvals    ApprovalStats     `json:"approvals"`
}

type AttendanceStats struct {
	PresentDays int `json:"present_days"`
	LateDays    int `json:"late_days"`
	AbsentDays  int `json:"absent_days"`
	TotalDays   int `json:"total_days"`
}

type WorkingHoursStats struct {
	TotalHours    decimal.Decimal `json:"total_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	AverageHours  decimal.Decimal `json:"average_hours"`
}

type PunctualityStats struct {
	TotalLateMinutes      int             `json:"total_late_minutes"`
	TotalUndertimeMinutes int             `json:"total_undertime_minutes"`
	PunctualityRate       decimal.Decimal `json:"punctuality_rate"`
}

type ApprovalStats struct {
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

type ReportComparison struct {
	PreviousMonth      MonthStats `json:"previousMonth"`
	DepartmentAverages DeptStats  `json:"departmentAverages"`
}

type DeptStats struct {
	AverageHours       decimal.Decimal `json:"average_hours"`
	AverageLateMinutes decimal.Decimal `json:"average_late_minutes"`
	AveragePresentDays decimal.Decimal `json:"average_present_days"`
}

type DayDetail struct {
	Date          string          `json:"date"`
	TimeIn        *string         `json:"time_in,omitempty"`
	TimeOut       *string         `json:"time_out,omitempty"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	LateMinutes   int             `json:"late_minutes"`
	Status        string          `json:"status"`
}
