package stats

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	checkedIn int

	monthly       []attendance.Attendance
	rangeStart    string
	rangeEnd      string
	rangeEmployee string
}

func (s *stubAttendanceRepo) CountCheckedIn(ctx context.Context, date string) (int, error) {
	return s.checkedIn, nil
}

func (s *stubAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	s.rangeEmployee = employeeID
	s.rangeStart = startDate
	s.rangeEnd = endDate
	return s.monthly, nil
}

type stubLeaveRepo struct {
	leave.LeaveRepository
	onLeave []leave.Leave
}

func (s *stubLeaveRepo) ListApprovedOverlapping(ctx context.Context, date string, employeeID *string) ([]leave.Leave, error) {
	return s.onLeave, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active int
	depts  []employee.DepartmentCount
}

func (s *stubEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return s.active, nil
}

func (s *stubEmployeeRepo) DepartmentCounts(ctx context.Context) ([]employee.DepartmentCount, error) {
	return s.depts, nil
}

func fixedClock() clock.Clock {
	return clock.Fixed{T: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
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

func strPtr(s string) *string { return &s }

func TestMonthly(t *testing.T) {
	attRepo := &stubAttendanceRepo{monthly: []attendance.Attendance{
		{ID: "a1", EmployeeID: "e1", Date: "2025-03-03", CheckIn: strPtr("09:00:00"), WorkingHours: 8},
		{ID: "a2", EmployeeID: "e1", Date: "2025-03-04", CheckIn: strPtr("09:15:00"), WorkingHours: 7.5},
		// checked in but never out: zero hours, still a present day
		{ID: "a3", EmployeeID: "e1", Date: "2025-03-05", CheckIn: strPtr("08:45:00"), WorkingHours: 0},
		// marked absent, no check-in, contributes no present day
		{ID: "a4", EmployeeID: "e1", Date: "2025-03-06", Status: attendance.StatusAbsent},
	}}
	svc := NewStatsService(attRepo, &stubLeaveRepo{}, &stubEmployeeRepo{}, fixedClock())

	resp, err := svc.Monthly(identityContext(t, "e1", user.RoleEmployee), 0, 0)
	require.NoError(t, err)

	// zero year/month fall back to the fixed clock's month
	assert.Equal(t, "e1", attRepo.rangeEmployee)
	assert.Equal(t, "2025-03-01", attRepo.rangeStart)
	assert.Equal(t, "2025-03-31", attRepo.rangeEnd)

	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, 4, resp.TotalRecords)
	assert.Equal(t, 3, resp.PresentDays)
	assert.Equal(t, 15.5, resp.TotalHours)
	assert.Equal(t, 5.17, resp.AverageHours)
	assert.Equal(t, 0, resp.LateCount)
}

func TestMonthly_FebruaryRange(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	svc := NewStatsService(attRepo, &stubLeaveRepo{}, &stubEmployeeRepo{}, fixedClock())

	resp, err := svc.Monthly(identityContext(t, "e1", user.RoleEmployee), 2024, 2)
	require.NoError(t, err)

	// leap year
	assert.Equal(t, "2024-02-01", attRepo.rangeStart)
	assert.Equal(t, "2024-02-29", attRepo.rangeEnd)
	assert.Equal(t, "2024-02", resp.Month)
	assert.Equal(t, 0, resp.TotalRecords)
	assert.Equal(t, 0.0, resp.AverageHours)
}

func TestSnapshot(t *testing.T) {
	svc := NewStatsService(
		&stubAttendanceRepo{checkedIn: 4},
		&stubLeaveRepo{onLeave: []leave.Leave{
			{ID: "l1", EmployeeID: "e7"},
			{ID: "l2", EmployeeID: "e8"},
			// second approved leave covering the same employee
			{ID: "l3", EmployeeID: "e8"},
		}},
		&stubEmployeeRepo{active: 10, depts: []employee.DepartmentCount{
			{Department: "Engineering", Count: 6},
			{Department: "Sales", Count: 4},
		}},
		fixedClock(),
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, snap.TotalEmployees)
	assert.Equal(t, 4, snap.PresentToday)
	assert.Equal(t, 2, snap.OnLeaveToday)
	// on-leave employees still count as absent
	assert.Equal(t, 6, snap.AbsentToday)
	assert.Equal(t, 40.0, snap.AttendanceRate)
	require.Len(t, snap.Departments, 2)
	assert.Equal(t, "Engineering", snap.Departments[0].Department)
}

func TestSnapshot_RateRoundedToWhole(t *testing.T) {
	svc := NewStatsService(
		&stubAttendanceRepo{checkedIn: 1},
		&stubLeaveRepo{},
		&stubEmployeeRepo{active: 3},
		fixedClock(),
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 33.0, snap.AttendanceRate)
	assert.Equal(t, 2, snap.AbsentToday)
}

func TestSnapshot_AbsentNeverNegative(t *testing.T) {
	svc := NewStatsService(
		&stubAttendanceRepo{checkedIn: 5},
		&stubLeaveRepo{onLeave: []leave.Leave{{ID: "l1", EmployeeID: "e1"}}},
		&stubEmployeeRepo{active: 4},
		fixedClock(),
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.AbsentToday)
	// the rate is clamped to 100 even with stale counts
	assert.Equal(t, 100.0, snap.AttendanceRate)
}

func TestSnapshot_EmptyCompany(t *testing.T) {
	svc := NewStatsService(
		&stubAttendanceRepo{},
		&stubLeaveRepo{},
		&stubEmployeeRepo{},
		fixedClock(),
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.TotalEmployees)
	assert.Equal(t, 0.0, snap.AttendanceRate)
}
