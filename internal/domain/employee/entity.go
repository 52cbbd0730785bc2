package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
)

// Employee is the roster entity. The attendance core treats it as read-only
// reference data; credentials live here because the roster doubles as the
// identity directory.
type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Email         string
	PasswordHash  string
	Role          user.Role
	Department    string
	Position      string
	Phone         *string
	Address       *string
	DateOfJoining time.Time
	Salary        *decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
