package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/report"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/validator"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/worktime"
)

const standardDayHours = 8.0

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{AttendanceRepository: attendanceRepo}
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, startDate, endDate string, employeeID *string) (*report.ReportResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, startOK := validator.IsValidDate(startDate)
	end, endOK := validator.IsValidDate(endDate)
	if !startOK || !endOK {
		return nil, report.ErrInvalidRange
	}
	if end.Before(start) {
		return nil, report.ErrInvalidRange
	}

	// non-elevated callers can only report on themselves
	if !user.HasPermission(identity.Role, user.PermissionAttendanceViewAll) {
		employeeID = &identity.EmployeeID
	}

	records, err := s.AttendanceRepository.ListByRange(ctx, attendance.RangeFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		EmployeeID: employeeID,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, report.ErrEmptyRange
	}

	rows := make([]report.Row, 0, len(records))
	var totalHours float64
	var complete, incomplete, absent int
	for _, rec := range records {
		rows = append(rows, toRow(rec))
		totalHours += rec.WorkingHours
		switch rowStatus(rec) {
		case report.StatusComplete:
			complete++
		case report.StatusIncomplete:
			incomplete++
		default:
			absent++
		}
	}

	totalHours = worktime.Round2(totalHours)
	total := float64(len(rows))
	var avgComplete float64
	if complete > 0 {
		avgComplete = worktime.Round2(totalHours / float64(complete))
	}
	summary := report.Summary{
		TotalRecords:         len(rows),
		CompleteRecords:      complete,
		IncompleteRecords:    incomplete,
		AbsentRecords:        absent,
		CompletePercentage:   worktime.Round2(float64(complete) / total * 100),
		IncompletePercentage: worktime.Round2(float64(incomplete) / total * 100),
		AbsentPercentage:     worktime.Round2(float64(absent) / total * 100),
		TotalHours:           totalHours,
		AverageHours:         worktime.Round2(totalHours / total),
		AverageHoursComplete: avgComplete,
		LateCount:            0,
		ProductivityRate:     worktime.Round2(totalHours / (total * standardDayHours) * 100),
	}

	return &report.ReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
		Summary:   summary,
	}, nil
}

// WriteCSV implements report.ReportService.
func (s *ReportServiceImpl) WriteCSV(ctx context.Context, w io.Writer, startDate, endDate string, employeeID *string) error {
	rep, err := s.Generate(ctx, startDate, endDate, employeeID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	write := func(record ...string) error {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
		return nil
	}

	// title block
	sections := [][]string{
		{"Attendance Report"},
		{"Period", rep.StartDate + " to " + rep.EndDate},
		{},
		{"Employee Name", "Employee ID", "Department", "Date", "Day", "Check In", "Check Out", "Working Hours", "Status"},
	}
	for _, record := range sections {
		if err := write(record...); err != nil {
			return err
		}
	}

	// data table
	for _, row := range rep.Rows {
		err := write(
			row.EmployeeName,
			row.EmployeeCode,
			row.Department,
			row.Date,
			row.Day,
			row.CheckIn,
			row.CheckOut,
			fmt.Sprintf("%.2f", row.WorkingHours),
			row.Status,
		)
		if err != nil {
			return err
		}
	}

	// summary statistics
	pct := func(v float64) string { return fmt.Sprintf("%.2f%%", v) }
	summary := [][]string{
		{},
		{"Summary Statistics"},
		{"Total Records", strconv.Itoa(rep.Summary.TotalRecords), "100.00%"},
		{"Complete Records", strconv.Itoa(rep.Summary.CompleteRecords), pct(rep.Summary.CompletePercentage)},
		{"Incomplete Records", strconv.Itoa(rep.Summary.IncompleteRecords), pct(rep.Summary.IncompletePercentage)},
		{"Absent Records", strconv.Itoa(rep.Summary.AbsentRecords), pct(rep.Summary.AbsentPercentage)},
		{"Late Count", strconv.Itoa(rep.Summary.LateCount)},
		{},
		{"Working Hours Analysis"},
		{"Total Hours", fmt.Sprintf("%.2f", rep.Summary.TotalHours)},
		{"Average Hours Per Record", fmt.Sprintf("%.2f", rep.Summary.AverageHours)},
		{"Average Hours (Complete Records Only)", fmt.Sprintf("%.2f", rep.Summary.AverageHoursComplete)},
		{"Productivity Rate (%)", fmt.Sprintf("%.2f", rep.Summary.ProductivityRate)},
	}
	for _, record := range summary {
		if err := write(record...); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func toRow(rec attendance.Attendance) report.Row {
	row := report.Row{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         rec.Date,
		Day:          weekday(rec.Date),
		CheckIn:      formatClock12(rec.CheckIn),
		CheckOut:     formatClock12(rec.CheckOut),
		WorkingHours: rec.WorkingHours,
		Status:       string(rowStatus(rec)),
	}
	if rec.EmployeeName != nil {
		row.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeCode != nil {
		row.EmployeeCode = *rec.EmployeeCode
	}
	if rec.EmployeeDept != nil {
		row.Department = *rec.EmployeeDept
	}
	if rec.EmployeePosition != nil {
		row.Position = *rec.EmployeePosition
	}
	return row
}

func rowStatus(rec attendance.Attendance) report.RowStatus {
	switch {
	case rec.HasCheckedIn() && rec.HasCheckedOut():
		return report.StatusComplete
	case rec.HasCheckedIn():
		return report.StatusIncomplete
	default:
		return report.StatusAbsent
	}
}

// weekday names the day of the week for a YYYY-MM-DD date, or "-" when
// the date does not parse.
func weekday(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "-"
	}
	return d.Weekday().String()
}

// formatClock12 renders an HH:MM:SS clock time on the 12-hour clock, or
// "-" when the value is missing or unparseable.
func formatClock12(clockTime *string) string {
	if clockTime == nil || *clockTime == "" {
		return "-"
	}
	t, err := time.Parse("15:04:05", *clockTime)
	if err != nil {
		t, err = time.Parse("15:04", *clockTime)
		if err != nil {
			return "-"
		}
	}
	return t.Format("03:04 PM")
}
