package report

import (
	"context"
	"io"
)

type ReportService interface {
	// Generate builds the report for an inclusive date range, optionally
	// limited to one employee. Zero matching records is ErrEmptyRange.
	Generate(ctx context.Context, startDate, endDate string, employeeID *string) (*ReportResponse, error)
	// WriteCSV renders the same report as CSV to w.
	WriteCSV(ctx context.Context, w io.Writer, startDate, endDate string, employeeID *string) error
}
