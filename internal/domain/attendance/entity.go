package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

// Attendance is one record per (employee, calendar day). Date is a
// YYYY-MM-DD string, timezone-agnostic by construction. CheckIn/CheckOut are
// HH:MM:SS clock times; WorkingHours is derived from them on every write and
// never set directly.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             string
	CheckIn          *string
	CheckOut         *string
	WorkingHours     float64
	CheckInLocation  *string
	CheckOutLocation *string
	Status           Status
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined roster display fields
	EmployeeName     *string
	EmployeeCode     *string
	EmployeeDept     *string
	EmployeePosition *string
}

// HasCheckedIn reports whether the record carries a non-blank check-in time.
func (a Attendance) HasCheckedIn() bool {
	return a.CheckIn != nil && *a.CheckIn != ""
}

// HasCheckedOut reports whether the record carries a non-blank check-out time.
func (a Attendance) HasCheckedOut() bool {
	return a.CheckOut != nil && *a.CheckOut != ""
}
