package dailylog

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/dailylog"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
)

type DailyLogServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewDailyLogService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) dailylog.DailyLogService {
	return &DailyLogServiceImpl{
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Logs implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Logs(ctx context.Context, date string, employeeID *string, page, limit int) (*dailylog.LogsResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	// non-elevated callers get a one-person roster, so their own row is
	// still reconciled (attendance, leave, or absent) like everyone else's
	rosterFilter := employeeID
	if !user.HasPermission(identity.Role, user.PermissionAttendanceViewAll) {
		rosterFilter = &identity.EmployeeID
	}

	roster, err := s.EmployeeRepository.Roster(ctx, rosterFilter)
	if err != nil {
		return nil, err
	}
	attendances, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	leaves, err := s.LeaveRepository.ListApprovedOverlapping(ctx, date, rosterFilter)
	if err != nil {
		return nil, err
	}

	attendanceByEmployee := make(map[string]attendance.Attendance, len(attendances))
	for _, att := range attendances {
		attendanceByEmployee[att.EmployeeID] = att
	}
	leaveByEmployee := make(map[string]leave.Leave, len(leaves))
	for _, l := range leaves {
		if _, seen := leaveByEmployee[l.EmployeeID]; !seen {
			leaveByEmployee[l.EmployeeID] = l
		}
	}

	rows := make([]dailylog.Row, 0, len(roster))
	for _, emp := range roster {
		rows = append(rows, reconcile(emp, date, attendanceByEmployee, leaveByEmployee))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].EmployeeName) < strings.ToLower(rows[j].EmployeeName)
	})

	total := len(rows)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	paged := rows[start:end]

	responses := make([]dailylog.RowResponse, 0, len(paged))
	for _, row := range paged {
		responses = append(responses, dailylog.ToRowResponse(row))
	}

	return &dailylog.LogsResponse{
		Date:       date,
		Logs:       responses,
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// reconcile resolves one employee's state for the date. Attendance wins
// over approved leave, which wins over absent.
func reconcile(
	emp employee.Employee,
	date string,
	attendanceByEmployee map[string]attendance.Attendance,
	leaveByEmployee map[string]leave.Leave,
) dailylog.Row {
	row := dailylog.Row{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
		Position:     emp.Position,
		Date:         date,
	}

	if att, ok := attendanceByEmployee[emp.ID]; ok {
		row.ID = att.ID
		row.Kind = dailylog.KindAttendance
		row.CheckIn = att.CheckIn
		row.CheckOut = att.CheckOut
		row.WorkingHours = att.WorkingHours
		row.Status = string(att.Status)
		return row
	}

	if l, ok := leaveByEmployee[emp.ID]; ok {
		row.ID = "leave_" + emp.ID + "_" + date
		row.Kind = dailylog.KindLeave
		leaveType := string(l.LeaveType)
		row.LeaveType = &leaveType
		leaveID := l.ID
		row.LeaveID = &leaveID
		row.Status = "on_leave"
		return row
	}

	row.ID = "absent_" + emp.ID + "_" + date
	row.Kind = dailylog.KindAbsent
	row.Status = string(attendance.StatusAbsent)
	return row
}
