package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, department, search *string, page, limit int) (*ListEmployeesResponse, error)
	Departments(ctx context.Context) ([]string, error)
}
