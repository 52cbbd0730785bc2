package leave

import (
	"context"
	"math"

	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req *leave.SubmitLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, identity.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, employee.ErrEmployeeInactive
	}

	_, _, days := req.Span()
	l := &leave.Leave{
		EmployeeID: identity.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}
	if err := s.LeaveRepository.Create(ctx, l); err != nil {
		return nil, err
	}

	l.EmployeeName = &emp.FullName
	l.EmployeeCode = &emp.EmployeeCode
	l.Department = &emp.Department
	resp := leave.ToResponse(l)
	return &resp, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, status, leaveType, employeeID *string, page, limit int) (*leave.ListLeavesResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := leave.ListFilter{
		Status:     status,
		LeaveType:  leaveType,
		EmployeeID: employeeID,
		Page:       page,
		Limit:      limit,
	}
	// non-elevated callers only ever see their own requests
	if !user.HasPermission(identity.Role, user.PermissionLeaveViewAll) {
		filter.EmployeeID = &identity.EmployeeID
	}

	leaves, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, leave.ToResponse(&leaves[i]))
	}

	return &leave.ListLeavesResponse{
		Leaves:     responses,
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, leaveID string, req *leave.DecideLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(identity.Role, user.PermissionLeaveApprove) {
		return nil, user.ErrInsufficientPermissions
	}

	decided, err := s.LeaveRepository.SetDecision(ctx, leaveID, leave.Status(req.Status), identity.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := leave.ToResponse(decided)
	return &resp, nil
}

// Stats implements leave.LeaveService.
func (s *LeaveServiceImpl) Stats(ctx context.Context) (*leave.StatsResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var employeeID *string
	if !user.HasPermission(identity.Role, user.PermissionLeaveViewAll) {
		employeeID = &identity.EmployeeID
	}

	counts, err := s.LeaveRepository.StatusStats(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &leave.StatsResponse{
		Pending:      counts.Pending,
		Approved:     counts.Approved,
		Rejected:     counts.Rejected,
		Total:        counts.Total,
		ApprovedDays: counts.ApprovedDays,
	}, nil
}
