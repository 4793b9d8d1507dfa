package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payroll approval state. The integer values are part of the
// stored contract and must not be renumbered.
type Status int

const (
	StatusDraft     Status = 0
	StatusForReview Status = 1
	StatusApproved  Status = 2
	StatusRejected  Status = 3
	StatusProcessed Status = 9
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusForReview:
		return "For Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusProcessed:
		return "Processed"
	}
	return "Unknown"
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusForReview, StatusApproved, StatusRejected, StatusProcessed:
		return true
	}
	return false
}

// transitions is the closed transition table. Processed is terminal and
// Rejected only re-enters the flow through Edit followed by Submit.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusForReview},
	StatusForReview: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusProcessed},
	StatusRejected:  {StatusForReview},
}

// CanTransitionTo reports whether the state machine allows moving from s to
// next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether field updates are allowed in this state.
func (s Status) Editable() bool {
	return s == StatusRejected
}

// Payroll is one employee's aggregated pay for one period.
type Payroll struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	PresentDays   int
	AbsenceDays   int

	RegularPay         decimal.Decimal
	OvertimePay        decimal.Decimal
	HolidayPay         decimal.Decimal
	Allowance          decimal.Decimal
	Bonus              decimal.Decimal
	Tax                decimal.Decimal
	TardinessDeduction decimal.Decimal
	AbsenceDeduction   decimal.Decimal
	MandatoryDeduction decimal.Decimal
	TotalDeduction     decimal.Decimal
	GrossPay           decimal.Decimal
	NetPay             decimal.Decimal

	Status    Status
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
	Department   *string
}

// AuditAction names a state-machine transition for the audit trail.
type AuditAction string

const (
	AuditActionSubmit  AuditAction = "submit"
	AuditActionApprove AuditAction = "approve"
	AuditActionReject  AuditAction = "reject"
	AuditActionProcess AuditAction = "process"
	AuditActionEdit    AuditAction = "edit"
)

// AuditLogEntry records who performed which transition on which payroll.
// Entries are append-only; nothing ever mutates or deletes them.
type AuditLogEntry struct {
	ID        string
	PayrollID string
	ActorID   string
	Action    AuditAction
	Remarks   *string
	CreatedAt time.Time

	// Joined fields
	ActorName   *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}
