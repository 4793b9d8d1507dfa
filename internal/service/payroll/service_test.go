package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
)

// fakeRuleRepo serves a fixed rule set; only ActiveRulesFor is exercised by
// the pricing path.
type fakeRuleRepo struct {
	deduction.DeductionRuleRepository
	rules []deduction.DeductionRule
}

func (f *fakeRuleRepo) ActiveRulesFor(_ context.Context, gross decimal.Decimal, asOf time.Time) ([]deduction.DeductionRule, error) {
	var matched []deduction.DeductionRule
	for _, rule := range f.rules {
		if rule.ContainsSalary(gross) && rule.InEffectOn(asOf) {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func presentDay(hours, overtime string, otStatus attendance.ApprovalStatus) attendance.Attendance {
	return attendance.Attendance{
		HoursWorked:            decimal.RequireFromString(hours),
		OvertimeHours:          decimal.RequireFromString(overtime),
		Status:                 attendance.DayStatusPresent,
		ApprovalStatus:         attendance.ApprovalApproved,
		OvertimeApprovalStatus: otStatus,
	}
}

func TestSummarize(t *testing.T) {
	rows := []attendance.Attendance{
		presentDay("8", "0", attendance.ApprovalPending),
		presentDay("10", "2", attendance.ApprovalApproved),
		// Unapproved overtime is excluded from the paid total but still
		// carved out of the regular hours.
		presentDay("11", "3", attendance.ApprovalPending),
		{
			Status:             attendance.DayStatusLate,
			HoursWorked:        decimal.RequireFromString("7.5"),
			TardinessDeduction: decimal.RequireFromString("50"),
		},
		{Status: attendance.DayStatusAbsent},
	}

	sum := summarize(rows)

	assert.Equal(t, 4, sum.PresentDays)
	assert.Equal(t, 1, sum.AbsenceDays)
	assert.True(t, sum.TotalHours.Equal(decimal.RequireFromString("31.5")), "regular %s", sum.TotalHours)
	assert.True(t, sum.OvertimeHours.Equal(decimal.NewFromInt(2)), "overtime %s", sum.OvertimeHours)
	assert.True(t, sum.TardinessDeduction.Equal(decimal.NewFromInt(50)))
}

func TestBuildPayroll(t *testing.T) {
	tenPercent := deduction.DeductionRule{
		ID:              "rule-sss",
		Type:            deduction.RuleTypeSSS,
		SalaryRangeFrom: decimal.Zero,
		SalaryRangeTo:   decimal.NewFromInt(100000),
		PercentageRate:  decimal.NewFromInt(10),
		EmployerShare:   decimal.NewFromInt(5),
		EmployeeShare:   decimal.NewFromInt(5),
		EffectiveDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	svc := &payrollServiceImpl{ruleRepo: &fakeRuleRepo{rules: []deduction.DeductionRule{tenPercent}}}

	// 19 plain 8-hour days plus one 16-hour day with 8 approved overtime
	// hours: 160 regular hours and 8 overtime hours.
	rows := make([]attendance.Attendance, 0, 21)
	for i := 0; i < 19; i++ {
		rows = append(rows, presentDay("8", "0", attendance.ApprovalPending))
	}
	rows = append(rows, presentDay("16", "8", attendance.ApprovalApproved))
	rows = append(rows, attendance.Attendance{Status: attendance.DayStatusAbsent})

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	rate := decimal.NewFromInt(100)

	p, err := svc.buildPayroll(context.Background(), employee.Employee{ID: "emp-1"}, start, end, summarize(rows), rate)
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusDraft, p.Status)
	assert.Equal(t, 20, p.PresentDays)
	assert.Equal(t, 1, p.AbsenceDays)
	assert.True(t, p.RegularPay.Equal(decimal.NewFromInt(16000)), "regular %s", p.RegularPay)
	assert.True(t, p.OvertimePay.Equal(decimal.NewFromInt(1000)), "overtime %s", p.OvertimePay)
	assert.True(t, p.GrossPay.Equal(decimal.NewFromInt(17000)), "gross %s", p.GrossPay)
	assert.True(t, p.MandatoryDeduction.Equal(decimal.NewFromInt(850)), "mandatory %s", p.MandatoryDeduction)
	// One absent day at 8 hours of the base rate.
	assert.True(t, p.AbsenceDeduction.Equal(decimal.NewFromInt(800)), "absence %s", p.AbsenceDeduction)
	assert.True(t, p.TotalDeduction.Equal(decimal.NewFromInt(1650)), "total deduction %s", p.TotalDeduction)
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(15350)), "net %s", p.NetPay)
}

func TestBuildPayrollNoMatchingRule(t *testing.T) {
	svc := &payrollServiceImpl{ruleRepo: &fakeRuleRepo{}}

	rows := []attendance.Attendance{presentDay("8", "0", attendance.ApprovalPending)}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	p, err := svc.buildPayroll(context.Background(), employee.Employee{ID: "emp-1"}, start, end, summarize(rows), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, p.MandatoryDeduction.IsZero())
	assert.True(t, p.GrossPay.Equal(decimal.NewFromInt(800)))
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(800)))
}

// fakeTx satisfies the transaction helper without a database; Commit and
// Rollback are no-ops and the fake repositories ignore the bound querier.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(context.Context) (pgx.Tx, error) {
	return fakeTx{}, nil
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	row              payroll.Payroll
	batchExists      bool
	createBatchCalls int
}

func (f *fakePayrollRepo) BatchExists(_ context.Context, _, _ time.Time) (bool, error) {
	return f.batchExists, nil
}

func (f *fakePayrollRepo) CreateBatch(_ context.Context, rows []payroll.Payroll) ([]payroll.Payroll, error) {
	f.createBatchCalls++
	return rows, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Payroll, error) {
	if f.row.ID != id {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return f.row, nil
}

func (f *fakePayrollRepo) TransitionStatus(_ context.Context, id string, from, to payroll.Status, remarks *string) error {
	if f.row.ID != id {
		return payroll.ErrPayrollNotFound
	}
	if f.row.Status != from {
		return payroll.ErrInvalidTransition
	}
	f.row.Status = to
	if remarks != nil {
		f.row.Remarks = remarks
	}
	return nil
}

func (f *fakePayrollRepo) UpdateFields(_ context.Context, id string, req payroll.EditPayrollRequest) error {
	if f.row.ID != id {
		return payroll.ErrPayrollNotFound
	}
	if req.Allowance != nil {
		f.row.Allowance = *req.Allowance
	}
	if req.Bonus != nil {
		f.row.Bonus = *req.Bonus
	}
	if req.Tax != nil {
		f.row.Tax = *req.Tax
	}
	return nil
}

type fakeAuditRepo struct {
	payroll.AuditLogRepository
	entries []payroll.AuditLogEntry
}

func (f *fakeAuditRepo) Append(_ context.Context, entry payroll.AuditLogEntry) (payroll.AuditLogEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token := jwt.New()
	require.NoError(t, token.Set("employee_id", employeeID))
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGenerateRejectsExistingBatch(t *testing.T) {
	repo := &fakePayrollRepo{batchExists: true}
	svc := &payrollServiceImpl{payrollRepo: repo}

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-15",
	})

	assert.ErrorIs(t, err, payroll.ErrBatchExists)
	assert.Zero(t, repo.createBatchCalls)
}

func TestSubmitApprovedAppendsNoAuditEntry(t *testing.T) {
	repo := &fakePayrollRepo{row: payroll.Payroll{ID: "pay-1", Status: payroll.StatusApproved}}
	audit := &fakeAuditRepo{}
	svc := &payrollServiceImpl{payrollRepo: repo, auditRepo: audit}

	_, err := svc.Submit(authedContext(t, "emp-hr"), "pay-1")

	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)
	assert.Empty(t, audit.entries)
	assert.Equal(t, payroll.StatusApproved, repo.row.Status)
}

func TestTransitionsAppendOneAuditEntryEach(t *testing.T) {
	repo := &fakePayrollRepo{row: payroll.Payroll{ID: "pay-1", Status: payroll.StatusDraft}}
	audit := &fakeAuditRepo{}
	svc := &payrollServiceImpl{db: fakeTxBeginner{}, payrollRepo: repo, auditRepo: audit}
	ctx := authedContext(t, "emp-hr")

	_, err := svc.Submit(ctx, "pay-1")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, payroll.RejectPayrollRequest{ID: "pay-1", Remarks: "recheck rates"})
	require.NoError(t, err)

	bonus := decimal.NewFromInt(500)
	_, err = svc.Edit(ctx, payroll.EditPayrollRequest{ID: "pay-1", Bonus: &bonus})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "pay-1")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "pay-1")
	require.NoError(t, err)

	_, err = svc.Process(ctx, "pay-1")
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusProcessed, repo.row.Status)
	assert.True(t, repo.row.Bonus.Equal(bonus))

	require.Len(t, audit.entries, 6)
	actions := make([]payroll.AuditAction, 0, len(audit.entries))
	for _, entry := range audit.entries {
		assert.Equal(t, "pay-1", entry.PayrollID)
		assert.Equal(t, "emp-hr", entry.ActorID)
		actions = append(actions, entry.Action)
	}
	assert.Equal(t, []payroll.AuditAction{
		payroll.AuditActionSubmit,
		payroll.AuditActionReject,
		payroll.AuditActionEdit,
		payroll.AuditActionSubmit,
		payroll.AuditActionApprove,
		payroll.AuditActionProcess,
	}, actions)
}
