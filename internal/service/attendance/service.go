package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/worktime"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
	}
}

// encodeLocation stores the raw location payload as a JSON string. A nil
// location stays nil; encoding problems are swallowed because location
// must never block the attendance write.
func encodeLocation(loc *attendance.Location) *string {
	if loc == nil {
		return nil
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.checkInFor(ctx, identity.EmployeeID, req.Location)
}

func (s *AttendanceServiceImpl) checkInFor(ctx context.Context, employeeID string, loc *attendance.Location) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := s.clock.Now()
	today := clock.DateString(now)
	checkIn := clock.TimeString(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if existing != nil {
		if existing.HasCheckedIn() {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// record exists without a check-in (e.g. seeded by an admin);
		// the conditional update still loses cleanly to a racing writer
		if err := s.AttendanceRepository.SetCheckIn(ctx, existing.ID, checkIn, encodeLocation(loc)); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		updated, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return s.toResponse(*updated, emp), nil
	}

	att := attendance.Attendance{
		EmployeeID:      employeeID,
		Date:            today,
		CheckIn:         &checkIn,
		CheckInLocation: encodeLocation(loc),
		Status:          attendance.StatusPresent,
	}
	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toResponse(created, emp), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.checkOutFor(ctx, identity.EmployeeID, req.Location)
}

func (s *AttendanceServiceImpl) checkOutFor(ctx context.Context, employeeID string, loc *attendance.Location) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.DateString(now)
	checkOut := clock.TimeString(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInFound
	}
	if !existing.HasCheckedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.HasCheckedOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	hours := worktime.ComputeWorkingHours(*existing.CheckIn, checkOut)
	if err := s.AttendanceRepository.SetCheckOut(ctx, existing.ID, checkOut, hours, encodeLocation(loc)); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.toResponse(*updated, emp), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	today := clock.DateString(s.clock.Now())
	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, identity.EmployeeID, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	resp := attendance.TodayStatusResponse{CurrentDate: today}
	if existing != nil {
		resp.HasCheckedIn = existing.HasCheckedIn()
		resp.HasCheckedOut = existing.HasCheckedOut()
		r := toResponseBare(*existing)
		resp.Attendance = &r
	}
	return resp, nil
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !user.HasPermission(identity.Role, user.PermissionAttendanceMarkOthers) {
		return attendance.AttendanceResponse{}, user.ErrInsufficientPermissions
	}

	switch req.Action {
	case "checkin":
		return s.checkInFor(ctx, req.EmployeeID, req.Location)
	case "checkout":
		return s.checkOutFor(ctx, req.EmployeeID, req.Location)
	default:
		return attendance.AttendanceResponse{}, fmt.Errorf("unsupported action %q", req.Action)
	}
}

// RecentToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecentToday(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	today := clock.DateString(s.clock.Now())
	records, err := s.AttendanceRepository.ListRecent(ctx, today, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponseJoined(rec))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) toResponse(att attendance.Attendance, emp employee.Employee) attendance.AttendanceResponse {
	resp := toResponseBare(att)
	summary := employee.Summarize(emp)
	resp.Employee = &summary
	return resp
}

func toResponseBare(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               att.ID,
		Date:             att.Date,
		CheckIn:          att.CheckIn,
		CheckOut:         att.CheckOut,
		WorkingHours:     att.WorkingHours,
		CheckInLocation:  att.CheckInLocation,
		CheckOutLocation: att.CheckOutLocation,
		Status:           string(att.Status),
		Notes:            att.Notes,
		CreatedAt:        att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        att.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponseJoined(att attendance.Attendance) attendance.AttendanceResponse {
	resp := toResponseBare(att)
	if att.EmployeeName != nil {
		summary := employee.Summary{
			ID:   att.EmployeeID,
			Name: *att.EmployeeName,
		}
		if att.EmployeeCode != nil {
			summary.EmployeeID = *att.EmployeeCode
		}
		if att.EmployeeDept != nil {
			summary.Department = *att.EmployeeDept
		}
		if att.EmployeePosition != nil {
			summary.Position = *att.EmployeePosition
		}
		resp.Employee = &summary
	}
	return resp
}
