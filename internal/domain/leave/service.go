package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, req *SubmitLeaveRequest) (*LeaveResponse, error)
	List(ctx context.Context, status, leaveType, employeeID *string, page, limit int) (*ListLeavesResponse, error)
	Decide(ctx context.Context, leaveID string, req *DecideLeaveRequest) (*LeaveResponse, error)
	Stats(ctx context.Context) (*StatsResponse, error)
}
