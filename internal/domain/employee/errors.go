package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrEmailExists         = errors.New("email already registered")
	ErrEmployeeArchived    = errors.New("employee is already archived")
	ErrEmployeeNotArchived = errors.New("employee is not archived")
	ErrNoEligibleEmployees = errors.New("no eligible employees found")
)
