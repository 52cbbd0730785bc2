package leave

import (
	"time"

	"github.com/staffpoint/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leave type is required"})
	} else if !validator.IsInSlice(r.LeaveType, ValidTypes()) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "invalid leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "start date must be a valid YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "end date must be a valid YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "end date must not be before start date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Span returns the parsed dates and the inclusive day count. Validate
// must have passed first.
func (r *SubmitLeaveRequest) Span() (time.Time, time.Time, int) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end, SpanDays(start, end)
}

type DecideLeaveRequest struct {
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName *string    `json:"employeeName,omitempty"`
	EmployeeCode *string    `json:"employeeCode,omitempty"`
	Department   *string    `json:"department,omitempty"`
	LeaveType    string     `json:"leaveType"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	Days         int        `json:"days"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	DecidedBy    *string    `json:"decidedBy,omitempty"`
	DecidedAt    *time.Time `json:"decidedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func ToResponse(l *Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeCode: l.EmployeeCode,
		Department:   l.Department,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Days:         l.Days,
		Reason:       l.Reason,
		Status:       string(l.Status),
		DecidedBy:    l.DecidedBy,
		DecidedAt:    l.DecidedAt,
		CreatedAt:    l.CreatedAt,
	}
}

type ListLeavesResponse struct {
	Leaves     []LeaveResponse `json:"leaves"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

type StatsResponse struct {
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Total        int `json:"total"`
	ApprovedDays int `json:"approvedDays"`
}
