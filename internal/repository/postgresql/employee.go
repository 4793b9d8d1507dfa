package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.middle_name, e.last_name, e.department,
	e.position_id, e.role, e.email, e.phone_number, e.hire_date, e.dob, e.address,
	e.created_at, e.updated_at, e.deleted_at, p.title, p.hourly_rate
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.MiddleName, &emp.LastName,
		&emp.Department, &emp.PositionID, &emp.Role, &emp.Email, &emp.PhoneNumber,
		&emp.HireDate, &emp.DOB, &emp.Address, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DeletedAt, &emp.PositionTitle, &emp.HourlyRate,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_code, first_name, middle_name, last_name, department,
			position_id, role, email, phone_number, hire_date, dob, address
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id, created_at, updated_at
	`

	created := newEmployee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FirstName, newEmployee.MiddleName,
		newEmployee.LastName, newEmployee.Department, newEmployee.PositionID,
		newEmployee.Role, newEmployee.Email, newEmployee.PhoneNumber,
		newEmployee.HireDate, newEmployee.DOB, newEmployee.Address,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.employee_code = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with code %s: %w", employeeCode, err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if !filter.IncludeArchived {
		conditions = append(conditions, "e.deleted_at IS NULL")
	}
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", argPos))
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE ` + where + `
		ORDER BY e.employee_code
	`
	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.MiddleName != nil {
		appendSet("middle_name", *req.MiddleName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Department != nil {
		appendSet("department", *req.Department)
	}
	if req.PositionID != nil {
		appendSet("position_id", *req.PositionID)
	}
	if req.Role != nil {
		appendSet("role", *req.Role)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.PhoneNumber != nil {
		appendSet("phone_number", *req.PhoneNumber)
	}
	if req.Address != nil {
		appendSet("address", *req.Address)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id
	`, strings.Join(sets, ", "), argPos)
	args = append(args, id)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}

	return nil
}

// Archive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to archive employee with id %s: %w", id, err)
	}

	return nil
}

// Restore implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id
	`

	var restoredID string
	err := q.QueryRow(ctx, query, id).Scan(&restoredID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotArchived
		}
		return fmt.Errorf("failed to restore employee with id %s: %w", id, err)
	}

	return nil
}

// GetPayrollEligible implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetPayrollEligible(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.deleted_at IS NULL AND e.role <> $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, employee.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll eligible employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// HourlyRateByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) HourlyRateByEmployeeID(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT p.hourly_rate
		FROM employees e
		JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1
	`

	var rate decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID).Scan(&rate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve hourly rate for employee %s: %w", employeeID, err)
	}

	return rate, nil
}
