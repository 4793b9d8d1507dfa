package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/domain/master/position"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	positionRepo position.PositionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName(),
		Department:    emp.Department,
		PositionID:    emp.PositionID,
		PositionTitle: emp.PositionTitle,
		HourlyRate:    emp.HourlyRate,
		Role:          int(emp.Role),
		Email:         emp.Email,
		PhoneNumber:   emp.PhoneNumber,
		HireDate:      emp.HireDate.Format("2006-01-02"),
		Archived:      emp.DeletedAt != nil,
	}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The position must exist and be active before the employee can point at
	// it; its hourly rate is what every downstream pay computation uses.
	pos, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if pos.DeletedAt != nil {
		return employee.EmployeeResponse{}, position.ErrPositionNotFound
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	entity := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Department:   req.Department,
		PositionID:   req.PositionID,
		Role:         employee.Role(req.Role),
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		HireDate:     hireDate,
		Address:      req.Address,
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		entity.DOB = &dob
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created.PositionTitle = &pos.Title
	created.HourlyRate = &pos.HourlyRate
	return toEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PositionID != nil {
		pos, err := s.positionRepo.GetByID(ctx, *req.PositionID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if pos.DeletedAt != nil {
			return employee.EmployeeResponse{}, position.ErrPositionNotFound
		}
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(updated), nil
}

func (s *employeeServiceImpl) Archive(ctx context.Context, id string) error {
	return s.employeeRepo.Archive(ctx, id)
}

func (s *employeeServiceImpl) Restore(ctx context.Context, id string) error {
	return s.employeeRepo.Restore(ctx, id)
}
