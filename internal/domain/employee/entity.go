package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string // YEAR-NNNNN, assigned at hiring
	FirstName    string
	MiddleName   *string
	LastName     string
	Department   string
	PositionID   string
	Role         Role
	Email        string
	PhoneNumber  *string
	HireDate     time.Time
	DOB          *time.Time
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined fields
	PositionTitle *string
	HourlyRate    *decimal.Decimal
}

// IsActive reports whether the employee has not been terminated. Terminated
// employees are tombstoned, never purged, so payroll history keeps resolving.
func (e Employee) IsActive() bool {
	return e.DeletedAt == nil
}

func (e Employee) FullName() string {
	if e.MiddleName != nil && *e.MiddleName != "" {
		return e.FirstName + " " + *e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// Role discriminates access levels. Values are part of the stored contract.
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleHRManager  Role = 2
	RoleEmployee   Role = 3
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHRManager, RoleEmployee:
		return true
	}
	return false
}
