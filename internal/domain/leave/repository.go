package leave

import "context"

// ListFilter narrows and pages leave listings. Nil pointer fields are
// not applied.
type ListFilter struct {
	EmployeeID *string
	Status     *string
	LeaveType  *string
	Page       int
	Limit      int
}

// StatusCounts aggregates leave requests by decision state.
// ApprovedDays is the summed day span of approved requests.
type StatusCounts struct {
	Pending      int
	Approved     int
	Rejected     int
	Total        int
	ApprovedDays int
}

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id string) (*Leave, error)
	// SetDecision flips a pending request to approved or rejected. It
	// reports ErrLeaveAlreadyProcessed when the row is no longer pending,
	// so concurrent deciders cannot both win.
	SetDecision(ctx context.Context, id string, status Status, decidedBy string) (*Leave, error)
	List(ctx context.Context, filter ListFilter) ([]Leave, int, error)
	// ListApprovedOverlapping returns approved leaves whose date span
	// covers the given YYYY-MM-DD date, optionally for one employee.
	ListApprovedOverlapping(ctx context.Context, date string, employeeID *string) ([]Leave, error)
	StatusStats(ctx context.Context, employeeID *string) (*StatusCounts, error)
}
