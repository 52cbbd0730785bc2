package employee

import "github.com/shopspring/decimal"

// Summary carries the roster display fields embedded in attendance rows,
// daily logs, and reports.
type Summary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// Summarize extracts the display fields of e.
func Summarize(e Employee) Summary {
	return Summary{
		ID:         e.ID,
		Name:       e.FullName,
		EmployeeID: e.EmployeeCode,
		Department: e.Department,
		Position:   e.Position,
	}
}

// EmployeeResponse is the roster entry returned to elevated callers;
// Salary is omitted when not recorded.
type EmployeeResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	Department    string           `json:"department"`
	Position      string           `json:"position"`
	Phone         *string          `json:"phone,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	DateOfJoining string           `json:"date_of_joining"`
	IsActive      bool             `json:"is_active"`
}

type ListEmployeesResponse struct {
	Employees   []EmployeeResponse `json:"employees"`
	Total       int64              `json:"total"`
	TotalPages  int                `json:"total_pages"`
	CurrentPage int                `json:"current_page"`
}
