package response

import (
	"errors"
	"net/http"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/auth"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/domain/report"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenInvalid):
		Unauthorized(w, "Token is invalid or expired")

	// Permission errors
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is deactivated")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNoCheckInFound),
		errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Report domain errors
	case errors.Is(err, report.ErrEmptyRange):
		NotFound(w, "No attendance records found for the given range")
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "Invalid date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
