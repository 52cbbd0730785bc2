package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
)

// fakeAttendanceRepo keeps records in memory keyed by (employee, date),
// mirroring the unique constraint of the real table.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	copied := att
	f.records[k] = &copied
	return att, nil
}

func (f *fakeAttendanceRepo) SetCheckIn(ctx context.Context, id, checkIn string, location *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			if rec.CheckIn != nil && *rec.CheckIn != "" {
				return attendance.ErrAlreadyCheckedIn
			}
			rec.CheckIn = &checkIn
			rec.CheckInLocation = location
			rec.Status = attendance.StatusPresent
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id, checkOut string, workingHours float64, location *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.ID == id {
			if rec.CheckOut != nil && *rec.CheckOut != "" {
				return attendance.ErrAlreadyCheckedOut
			}
			rec.CheckOut = &checkOut
			rec.WorkingHours = workingHours
			rec.CheckOutLocation = location
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[f.key(employeeID, date)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.Date < filter.StartDate || rec.Date > filter.EndDate {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	return f.ListByRange(ctx, attendance.RangeFilter{StartDate: startDate, EndDate: endDate, EmployeeID: &employeeID})
}

func (f *fakeAttendanceRepo) CountCheckedIn(ctx context.Context, date string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, rec := range f.records {
		if rec.Date == date && rec.CheckIn != nil && *rec.CheckIn != "" {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) ListRecent(ctx context.Context, date string, limit int) ([]attendance.Attendance, error) {
	list, err := f.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// fakeEmployeeRepo serves a small fixed roster.
type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Roster(ctx context.Context, employeeID *string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if !e.IsActive {
			continue
		}
		if employeeID != nil && e.ID != *employeeID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, e := range f.employees {
		if e.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeEmployeeRepo) Departments(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, e := range f.employees {
		if e.IsActive && !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) DepartmentCounts(ctx context.Context) ([]employee.DepartmentCount, error) {
	counts := map[string]int{}
	for _, e := range f.employees {
		if e.IsActive {
			counts[e.Department]++
		}
	}
	var out []employee.DepartmentCount
	for dept, count := range counts {
		out = append(out, employee.DepartmentCount{Department: dept, Count: count})
	}
	return out, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

// identityContext fabricates the request context the auth middleware
// would produce for the given caller.
func identityContext(t *testing.T, employeeID, name, email string, role user.Role) context.Context {
	t.Helper()
	tok, _, err := testTokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"email":       email,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func testEmployee(id, name string, role user.Role) employee.Employee {
	return employee.Employee{
		ID:           id,
		EmployeeCode: "EMP-" + id,
		FullName:     name,
		Email:        name + "@example.com",
		Role:         role,
		Department:   "Engineering",
		Position:     "Engineer",
		IsActive:     true,
	}
}

func TestCheckIn_CreatesTodayRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	fixed := clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(attRepo, empRepo, fixed)

	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)
	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:00:00", *resp.CheckIn)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, "alice", resp.Employee.Name)
}

func TestCheckIn_TwiceSameDayFails(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	fixed := clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(attRepo, empRepo, fixed)

	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	emp := testEmployee("e1", "alice", user.RoleEmployee)
	emp.IsActive = false
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, clock.Fixed{T: time.Now()})

	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckOut_ComputesWorkingHours(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)

	morning := clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(attRepo, empRepo, morning).(*AttendanceServiceImpl)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	svc.clock = clock.Fixed{T: time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)}
	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "17:30:00", *resp.CheckOut)
	assert.Equal(t, 8.5, resp.WorkingHours)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	svc := NewAttendanceService(attRepo, empRepo, clock.Fixed{T: time.Now()})

	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)
	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestCheckOut_TwiceFails(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)

	svc := NewAttendanceService(attRepo, empRepo, clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)})
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestTodayStatus(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("e1", "alice", user.RoleEmployee))
	fixed := clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(attRepo, empRepo, fixed)
	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)

	status, err := svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.HasCheckedIn)
	assert.False(t, status.HasCheckedOut)
	assert.Equal(t, "2025-03-10", status.CurrentDate)
	assert.Nil(t, status.Attendance)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	status, err = svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasCheckedIn)
	assert.False(t, status.HasCheckedOut)
	require.NotNil(t, status.Attendance)
}

func TestMarkAttendance_RequiresPermission(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(
		testEmployee("e1", "alice", user.RoleEmployee),
		testEmployee("hr1", "heather", user.RoleHR),
	)
	svc := NewAttendanceService(attRepo, empRepo, clock.Fixed{T: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)})

	req := attendance.MarkAttendanceRequest{EmployeeID: "e1", Action: "checkin"}

	ctx := identityContext(t, "e1", "alice", "alice@example.com", user.RoleEmployee)
	_, err := svc.MarkAttendance(ctx, req)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	ctx = identityContext(t, "hr1", "heather", "heather@example.com", user.RoleHR)
	resp, err := svc.MarkAttendance(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, "alice", resp.Employee.Name)
}

func TestMarkAttendance_ValidatesAction(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(testEmployee("hr1", "heather", user.RoleHR))
	svc := NewAttendanceService(attRepo, empRepo, clock.Fixed{T: time.Now()})

	ctx := identityContext(t, "hr1", "heather", "heather@example.com", user.RoleHR)
	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Action: "nap"})
	assert.Error(t, err)
}
