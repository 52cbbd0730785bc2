package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNoCheckInFound    = errors.New("no check-in record found for today, please check in first")
	ErrNotCheckedIn      = errors.New("you must check in before checking out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
