package employee

import "context"

// ListFilter narrows the active roster. All fields are optional.
type ListFilter struct {
	EmployeeID *string
	Department *string
	Search     *string // matches name, email, or employee code
	Page       int
	Limit      int
}

// DepartmentCount is one row of the department breakdown.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// EmployeeRepository is the roster collaborator: read-only reference data
// from the core's perspective.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListActive returns active employees matching the filter, sorted by
	// creation time descending, with the unpaginated total.
	ListActive(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	// Roster returns every active employee, optionally narrowed to one id.
	Roster(ctx context.Context, employeeID *string) ([]Employee, error)

	CountActive(ctx context.Context) (int, error)
	Departments(ctx context.Context) ([]string, error)
	DepartmentCounts(ctx context.Context) ([]DepartmentCount, error)
}
