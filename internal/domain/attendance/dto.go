package attendance

import (
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Location is the free-form position payload optionally attached to a
// check-in or check-out. It is stored verbatim; a malformed payload must
// never block the write.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Label     *string  `json:"label,omitempty"`
}

type CheckInRequest struct {
	Location *Location `json:"location,omitempty"`
}

type CheckOutRequest struct {
	Location *Location `json:"location,omitempty"`
}

// MarkAttendanceRequest lets an admin/HR user record a check-in or
// check-out on behalf of another employee.
type MarkAttendanceRequest struct {
	EmployeeID string    `json:"user_id"`
	Action     string    `json:"action"` // "checkin" or "checkout"
	Location   *Location `json:"location,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Action != "checkin" && r.Action != "checkout" {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be 'checkin' or 'checkout'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID               string            `json:"id"`
	Employee         *employee.Summary `json:"user,omitempty"`
	Date             string            `json:"date"`
	CheckIn          *string           `json:"check_in,omitempty"`
	CheckOut         *string           `json:"check_out,omitempty"`
	WorkingHours     float64           `json:"working_hours"`
	CheckInLocation  *string           `json:"check_in_location,omitempty"`
	CheckOutLocation *string           `json:"check_out_location,omitempty"`
	Status           string            `json:"status"`
	Notes            *string           `json:"notes,omitempty"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

type TodayStatusResponse struct {
	HasCheckedIn  bool                `json:"has_checked_in"`
	HasCheckedOut bool                `json:"has_checked_out"`
	Attendance    *AttendanceResponse `json:"attendance,omitempty"`
	CurrentDate   string              `json:"current_date"`
}
