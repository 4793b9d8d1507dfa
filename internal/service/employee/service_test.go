package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/master/position"
	"github.com/workline-ph/erp-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	created *employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-1"
	f.created = &emp
	return emp, nil
}

type fakePositionRepo struct {
	position.PositionRepository
	positions map[string]position.Position
}

func (f *fakePositionRepo) GetByID(_ context.Context, id string) (position.Position, error) {
	pos, ok := f.positions[id]
	if !ok {
		return position.Position{}, position.ErrPositionNotFound
	}
	return pos, nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "2024-00137",
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Department:   "Engineering",
		PositionID:   "pos-1",
		Role:         int(employee.RoleEmployee),
		Email:        "juan.delacruz@workline.ph",
		HireDate:     "2024-03-01",
	}
}

func TestCreateEmployee(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	posRepo := &fakePositionRepo{positions: map[string]position.Position{
		"pos-1": {ID: "pos-1", Title: "Software Engineer", HourlyRate: decimal.NewFromInt(250)},
	}}
	svc := NewEmployeeService(empRepo, posRepo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.ID)
	assert.Equal(t, "Juan Dela Cruz", resp.FullName)
	require.NotNil(t, resp.PositionTitle)
	assert.Equal(t, "Software Engineer", *resp.PositionTitle)
	require.NotNil(t, resp.HourlyRate)
	assert.True(t, resp.HourlyRate.Equal(decimal.NewFromInt(250)))
	assert.False(t, resp.Archived)
}

func TestCreateEmployeeUnknownPosition(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, &fakePositionRepo{positions: map[string]position.Position{}})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestCreateEmployeeArchivedPosition(t *testing.T) {
	now := time.Now()
	posRepo := &fakePositionRepo{positions: map[string]position.Position{
		"pos-1": {ID: "pos-1", Title: "Software Engineer", DeletedAt: &now},
	}}
	svc := NewEmployeeService(&fakeEmployeeRepo{}, posRepo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, &fakePositionRepo{})

	req := validCreateRequest()
	req.EmployeeCode = "EMP-137"
	req.Email = "not-an-email"
	req.Role = 7

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_code")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "role")
}
