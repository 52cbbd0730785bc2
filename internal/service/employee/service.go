package employee

import (
	"context"
	"math"

	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, department, search *string, page, limit int) (*employee.ListEmployeesResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(identity.Role, user.PermissionEmployeeViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	employees, total, err := s.EmployeeRepository.ListActive(ctx, employee.ListFilter{
		Department: department,
		Search:     search,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return &employee.ListEmployeesResponse{
		Employees:   responses,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(identity.Role, user.PermissionEmployeeViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	return s.EmployeeRepository.Departments(ctx)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeID:    emp.EmployeeCode,
		Name:          emp.FullName,
		Email:         emp.Email,
		Role:          string(emp.Role),
		Department:    emp.Department,
		Position:      emp.Position,
		Phone:         emp.Phone,
		Salary:        emp.Salary,
		DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		IsActive:      emp.IsActive,
	}
}
