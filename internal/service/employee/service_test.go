package employee

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return s.active, int64(len(s.active)), nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

func identityContext(t *testing.T, employeeID string, role user.Role) context.Context {
	t.Helper()
	tok, _, err := testTokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestList_IncludesSalaryForElevatedCallers(t *testing.T) {
	salary := decimal.NewFromInt(7500)
	repo := &stubEmployeeRepo{active: []employee.Employee{
		{
			ID:            "e1",
			EmployeeCode:  "EMP-1",
			FullName:      "Alice",
			Email:         "alice@example.com",
			Role:          user.RoleEmployee,
			Department:    "Engineering",
			Position:      "Engineer",
			DateOfJoining: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Salary:        &salary,
			IsActive:      true,
		},
		{
			ID:            "e2",
			EmployeeCode:  "EMP-2",
			FullName:      "Bob",
			Email:         "bob@example.com",
			Role:          user.RoleEmployee,
			Department:    "Sales",
			Position:      "Rep",
			DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		},
	}}
	svc := NewEmployeeService(repo)

	resp, err := svc.List(identityContext(t, "hr1", user.RoleHR), nil, nil, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Employees, 2)

	require.NotNil(t, resp.Employees[0].Salary)
	assert.True(t, resp.Employees[0].Salary.Equal(salary))
	assert.Equal(t, "2023-06-01", resp.Employees[0].DateOfJoining)
	// unrecorded salary stays absent rather than zero
	assert.Nil(t, resp.Employees[1].Salary)
}

func TestList_RequiresViewAllPermission(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{})

	_, err := svc.List(identityContext(t, "e1", user.RoleEmployee), nil, nil, 1, 10)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}
