package dailylog

import "context"

type DailyLogService interface {
	// Logs reconciles the roster for a date into one row per employee,
	// paginated after sorting by employee name. Elevated callers may
	// narrow to one employee; others always get their own single row.
	Logs(ctx context.Context, date string, employeeID *string, page, limit int) (*LogsResponse, error)
}
