package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	attendancecalc "github.com/workline-ph/erp-backend-go/internal/service/attendance"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
	"github.com/workline-ph/erp-backend-go/internal/repository/postgresql"
)

// overtimeMultiplier prices approved overtime hours against the base rate.
var overtimeMultiplier = decimal.NewFromFloat(1.25)

type payrollServiceImpl struct {
	db             database.TxBeginner
	payrollRepo    payroll.PayrollRepository
	auditRepo      payroll.AuditLogRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	ruleRepo       deduction.DeductionRuleRepository
}

func NewPayrollService(
	db database.TxBeginner,
	payrollRepo payroll.PayrollRepository,
	auditRepo payroll.AuditLogRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	ruleRepo deduction.DeductionRuleRepository,
) payroll.PayrollService {
	return &payrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		auditRepo:      auditRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		ruleRepo:       ruleRepo,
	}
}

func toPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeCode: p.EmployeeCode,
		EmployeeName: p.EmployeeName,
		Department:   p.Department,
		PeriodStart:  p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    p.PeriodEnd.Format("2006-01-02"),

		TotalHours:    p.TotalHours,
		OvertimeHours: p.OvertimeHours,
		PresentDays:   p.PresentDays,
		AbsenceDays:   p.AbsenceDays,

		RegularPay:         p.RegularPay,
		OvertimePay:        p.OvertimePay,
		HolidayPay:         p.HolidayPay,
		Allowance:          p.Allowance,
		Bonus:              p.Bonus,
		Tax:                p.Tax,
		TardinessDeduction: p.TardinessDeduction,
		AbsenceDeduction:   p.AbsenceDeduction,
		MandatoryDeduction: p.MandatoryDeduction,
		TotalDeduction:     p.TotalDeduction,
		GrossPay:           p.GrossPay,
		NetPay:             p.NetPay,

		Status:      int(p.Status),
		StatusLabel: p.Status.String(),
		Remarks:     p.Remarks,
	}
}

// actorFromContext pulls the acting employee out of the verified JWT. Every
// state transition is attributed to this identity in the audit trail.
func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}
	actorID, ok := claims["employee_id"].(string)
	if !ok || actorID == "" {
		return "", fmt.Errorf("token has no employee_id claim")
	}
	return actorID, nil
}

// summarize folds one employee's attendance rows for the period. Overtime
// only counts once its claim is approved; regular hours are the worked hours
// minus the overtime portion so the two are never paid twice.
func summarize(rows []attendance.Attendance) attendance.PeriodSummary {
	var sum attendance.PeriodSummary
	for _, row := range rows {
		switch row.Status {
		case attendance.DayStatusPresent, attendance.DayStatusLate:
			sum.PresentDays++
		case attendance.DayStatusAbsent:
			sum.AbsenceDays++
		}

		overtime := decimal.Zero
		if row.OvertimeApprovalStatus == attendance.ApprovalApproved {
			overtime = row.OvertimeHours
		}
		regular := row.HoursWorked.Sub(row.OvertimeHours)
		if regular.IsNegative() {
			regular = decimal.Zero
		}

		sum.TotalHours = sum.TotalHours.Add(regular)
		sum.OvertimeHours = sum.OvertimeHours.Add(overtime)
		sum.TardinessDeduction = sum.TardinessDeduction.Add(row.TardinessDeduction)
		sum.HolidayPay = sum.HolidayPay.Add(row.HolidayPay)
	}
	return sum
}

// buildPayroll prices one employee's period summary into a Draft payroll row.
func (s *payrollServiceImpl) buildPayroll(ctx context.Context, emp employee.Employee, start, end time.Time, sum attendance.PeriodSummary, rate decimal.Decimal) (payroll.Payroll, error) {
	regularPay := sum.TotalHours.Mul(rate).Round(2)
	overtimePay := sum.OvertimeHours.Mul(rate).Mul(overtimeMultiplier).Round(2)

	absence := attendancecalc.ComputeDeductions(0, 0, sum.AbsenceDays, rate).Absence

	grossPay := regularPay.Add(overtimePay).Add(sum.HolidayPay)

	rules, err := s.ruleRepo.ActiveRulesFor(ctx, grossPay, end)
	if err != nil {
		return payroll.Payroll{}, err
	}
	mandatory := decimal.Zero
	for _, rule := range rules {
		mandatory = mandatory.Add(rule.ComputeShares(grossPay).EmployeeShare)
	}

	totalDeduction := sum.TardinessDeduction.Add(absence).Add(mandatory)

	return payroll.Payroll{
		EmployeeID:  emp.ID,
		PeriodStart: start,
		PeriodEnd:   end,

		TotalHours:    sum.TotalHours,
		OvertimeHours: sum.OvertimeHours,
		PresentDays:   sum.PresentDays,
		AbsenceDays:   sum.AbsenceDays,

		RegularPay:         regularPay,
		OvertimePay:        overtimePay,
		HolidayPay:         sum.HolidayPay,
		Allowance:          decimal.Zero,
		Bonus:              decimal.Zero,
		Tax:                decimal.Zero,
		TardinessDeduction: sum.TardinessDeduction,
		AbsenceDeduction:   absence,
		MandatoryDeduction: mandatory,
		TotalDeduction:     totalDeduction,
		GrossPay:           grossPay,
		NetPay:             grossPay.Sub(totalDeduction),

		Status: payroll.StatusDraft,
	}, nil
}

func (s *payrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	exists, err := s.payrollRepo.BatchExists(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, payroll.ErrBatchExists
	}

	employees, err := s.employeeRepo.GetPayrollEligible(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, employee.ErrNoEligibleEmployees
	}

	var created []payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		rows := make([]payroll.Payroll, 0, len(employees))
		for _, emp := range employees {
			attRows, err := s.attendanceRepo.ListByEmployeeBetween(txCtx, emp.ID, start, end)
			if err != nil {
				return err
			}
			rate, err := s.employeeRepo.HourlyRateByEmployeeID(txCtx, emp.ID)
			if err != nil {
				return err
			}

			row, err := s.buildPayroll(txCtx, emp, start, end, summarize(attRows), rate)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}

		created, err = s.payrollRepo.CreateBatch(txCtx, rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(created))
	for i, p := range created {
		p.EmployeeCode = &employees[i].EmployeeCode
		name := employees[i].FullName()
		p.EmployeeName = &name
		p.Department = &employees[i].Department
		responses = append(responses, toPayrollResponse(p))
	}
	return responses, nil
}

func (s *payrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(p), nil
}

func (s *payrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	payrolls, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toPayrollResponse(p))
	}

	return payroll.ListPayrollResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// transition moves one payroll to the target state and appends the matching
// audit entry in the same transaction, so the trail can never miss a hop.
func (s *payrollServiceImpl) transition(ctx context.Context, id string, to payroll.Status, action payroll.AuditAction, remarks *string) (payroll.PayrollResponse, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	current, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return payroll.PayrollResponse{}, payroll.ErrInvalidTransition
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payrollRepo.TransitionStatus(txCtx, id, current.Status, to, remarks); err != nil {
			return err
		}
		_, err := s.auditRepo.Append(txCtx, payroll.AuditLogEntry{
			PayrollID: id,
			ActorID:   actorID,
			Action:    action,
			Remarks:   remarks,
		})
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(updated), nil
}

func (s *payrollServiceImpl) Submit(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, payroll.StatusForReview, payroll.AuditActionSubmit, nil)
}

func (s *payrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, payroll.StatusApproved, payroll.AuditActionApprove, nil)
}

func (s *payrollServiceImpl) Reject(ctx context.Context, req payroll.RejectPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	return s.transition(ctx, req.ID, payroll.StatusRejected, payroll.AuditActionReject, &req.Remarks)
}

func (s *payrollServiceImpl) Process(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, payroll.StatusProcessed, payroll.AuditActionProcess, nil)
}

func (s *payrollServiceImpl) Edit(ctx context.Context, req payroll.EditPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	current, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !current.Status.Editable() {
		return payroll.PayrollResponse{}, payroll.ErrNotEditable
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payrollRepo.UpdateFields(txCtx, req.ID, req); err != nil {
			return err
		}
		_, err := s.auditRepo.Append(txCtx, payroll.AuditLogEntry{
			PayrollID: req.ID,
			ActorID:   actorID,
			Action:    payroll.AuditActionEdit,
			Remarks:   req.Remarks,
		})
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(updated), nil
}

func toAuditLogResponse(entry payroll.AuditLogEntry) payroll.AuditLogResponse {
	return payroll.AuditLogResponse{
		ID:        entry.ID,
		PayrollID: entry.PayrollID,
		ActorID:   entry.ActorID,
		ActorName: entry.ActorName,
		Action:    string(entry.Action),
		Remarks:   entry.Remarks,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

func (s *payrollServiceImpl) AuditLogs(ctx context.Context, filter payroll.AuditLogFilter) ([]payroll.AuditLogResponse, error) {
	var entries []payroll.AuditLogEntry
	var err error

	if filter.PayrollID != nil {
		entries, err = s.auditRepo.ListByPayroll(ctx, *filter.PayrollID)
	} else {
		var start, end *time.Time
		if filter.StartDate != nil {
			parsed, parseErr := time.Parse("2006-01-02", *filter.StartDate)
			if parseErr != nil {
				return nil, fmt.Errorf("failed to parse start date: %w", parseErr)
			}
			start = &parsed
		}
		if filter.EndDate != nil {
			parsed, parseErr := time.Parse("2006-01-02", *filter.EndDate)
			if parseErr != nil {
				return nil, fmt.Errorf("failed to parse end date: %w", parseErr)
			}
			end = &parsed
		}
		entries, err = s.auditRepo.ListAll(ctx, start, end)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toAuditLogResponse(entry))
	}
	return responses, nil
}
