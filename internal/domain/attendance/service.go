package attendance

import (
	"context"
)

// AttendanceService defines the check-in/check-out business logic. The
// acting employee comes from the request context's identity claims.
type AttendanceService interface {
	// CheckIn records today's check-in; ErrAlreadyCheckedIn when a
	// check-in already exists for the caller today.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut completes today's record and recomputes working hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// TodayStatus reports whether the caller has checked in/out today.
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// MarkAttendance performs a check-in or check-out on behalf of
	// another employee (admin/HR).
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// RecentToday returns the latest attendance records for today.
	RecentToday(ctx context.Context, limit int) ([]AttendanceResponse, error)
}
