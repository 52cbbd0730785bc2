package dailylog

// Kind tells which source produced a daily log row. Precedence when an
// employee matches several sources is attendance, then approved leave,
// then absent.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindLeave      Kind = "leave"
	KindAbsent     Kind = "absent"
)

// Row is one employee's reconciled state for a single date. Attendance
// rows carry the real record ID; leave and absent rows get synthetic IDs
// of the form "leave_<employee>_<date>" and "absent_<employee>_<date>"
// so clients always have a stable row key.
type Row struct {
	ID           string
	Kind         Kind
	EmployeeID   string
	EmployeeName string
	EmployeeCode string
	Department   string
	Position     string
	Date         string

	// attendance fields
	CheckIn      *string
	CheckOut     *string
	WorkingHours float64

	// leave fields
	LeaveType *string
	LeaveID   *string

	Status string
}
