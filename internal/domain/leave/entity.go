package leave

import "time"

type Type string

const (
	TypeSick      Type = "sick"
	TypeCasual    Type = "casual"
	TypeAnnual    Type = "annual"
	TypeMaternity Type = "maternity"
	TypeEmergency Type = "emergency"
)

func ValidTypes() []string {
	return []string{
		string(TypeSick),
		string(TypeCasual),
		string(TypeAnnual),
		string(TypeMaternity),
		string(TypeEmergency),
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave is a single leave request. Days is fixed at creation time as the
// inclusive day span between StartDate and EndDate.
type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  string
	EndDate    string
	Days       int
	Reason     string
	Status     Status
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// joined employee columns, populated by list queries
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Position     *string
}

// SpanDays returns the inclusive number of calendar days between two
// YYYY-MM-DD dates. Both endpoints count, so a single-day leave is 1.
func SpanDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
