package attendance

import "context"

// RangeFilter selects records by inclusive calendar-date range, optionally
// narrowed to one employee.
type RangeFilter struct {
	StartDate  string
	EndDate    string
	EmployeeID *string
}

// AttendanceRepository defines data access for attendance records. The
// backing table enforces a unique (employee_id, date) pair, so a day's record
// can be created at most once per employee even under concurrent requests.
type AttendanceRepository interface {
	// Create inserts a fresh record for (employee, date). A concurrent
	// insert for the same pair loses the race and gets ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// SetCheckIn fills the check-in time of an existing record that has
	// none yet; ErrAlreadyCheckedIn when another writer got there first.
	SetCheckIn(ctx context.Context, id, checkIn string, location *string) error

	// SetCheckOut sets the check-out time and the recomputed working hours
	// in one statement; ErrAlreadyCheckedOut when check-out is already set.
	SetCheckOut(ctx context.Context, id, checkOut string, workingHours float64, location *string) error

	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)

	// ListByDate returns all records for one calendar day with roster
	// display fields joined, newest first.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByRange returns records in the inclusive range sorted by date
	// descending then employee name ascending.
	ListByRange(ctx context.Context, filter RangeFilter) ([]Attendance, error)

	// ListByEmployeeAndRange returns one employee's records in the
	// inclusive range, date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error)

	// CountCheckedIn counts records for date with a non-blank check-in.
	CountCheckedIn(ctx context.Context, date string) (int, error)

	// ListRecent returns the latest records for date, newest first.
	ListRecent(ctx context.Context, date string, limit int) ([]Attendance, error)
}
