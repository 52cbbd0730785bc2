package stats

import "context"

type StatsService interface {
	Snapshot(ctx context.Context) (*SnapshotResponse, error)
	// Monthly aggregates the caller's attendance for the given month
	// (1-12). Zero month/year default to the current month.
	Monthly(ctx context.Context, year, month int) (*MonthlyResponse, error)
}
