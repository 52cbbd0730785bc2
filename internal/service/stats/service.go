package stats

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/domain/stats"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/worktime"
)

type StatsServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewStatsService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) stats.StatsService {
	return &StatsServiceImpl{
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
	}
}

// Monthly implements stats.StatsService.
func (s *StatsServiceImpl) Monthly(ctx context.Context, year, month int) (*stats.MonthlyResponse, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	// time.Date normalizes day 0 of the next month to this month's last day
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(
		ctx, identity.EmployeeID, clock.DateString(first), clock.DateString(last))
	if err != nil {
		return nil, err
	}

	var totalHours float64
	presentDays := 0
	for _, rec := range records {
		totalHours += rec.WorkingHours
		if rec.HasCheckedIn() {
			presentDays++
		}
	}

	var avgHours float64
	if presentDays > 0 {
		avgHours = totalHours / float64(presentDays)
	}

	return &stats.MonthlyResponse{
		Month:        first.Format("2006-01"),
		TotalRecords: len(records),
		PresentDays:  presentDays,
		TotalHours:   worktime.Round2(totalHours),
		AverageHours: worktime.Round2(avgHours),
		LateCount:    0,
	}, nil
}

// Snapshot implements stats.StatsService.
func (s *StatsServiceImpl) Snapshot(ctx context.Context) (*stats.SnapshotResponse, error) {
	today := clock.DateString(s.clock.Now())

	var (
		totalEmployees int
		presentToday   int
		onLeaveToday   int
		deptCounts     []employee.DepartmentCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalEmployees, err = s.EmployeeRepository.CountActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		presentToday, err = s.AttendanceRepository.CountCheckedIn(gctx, today)
		return err
	})
	g.Go(func() error {
		leaves, err := s.LeaveRepository.ListApprovedOverlapping(gctx, today, nil)
		if err != nil {
			return err
		}
		// several approved leaves can cover one employee on the same day
		seen := make(map[string]struct{}, len(leaves))
		for _, l := range leaves {
			seen[l.EmployeeID] = struct{}{}
		}
		onLeaveToday = len(seen)
		return nil
	})
	g.Go(func() error {
		var err error
		deptCounts, err = s.EmployeeRepository.DepartmentCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// employees on leave still count as absent; the leave tally is its
	// own field
	absentToday := totalEmployees - presentToday
	if absentToday < 0 {
		absentToday = 0
	}

	var rate float64
	if totalEmployees > 0 {
		rate = math.Round(float64(presentToday) / float64(totalEmployees) * 100)
	}
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}

	departments := make([]stats.DepartmentBreakdown, 0, len(deptCounts))
	for _, dc := range deptCounts {
		departments = append(departments, stats.DepartmentBreakdown{
			Department: dc.Department,
			Count:      dc.Count,
		})
	}

	return &stats.SnapshotResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		AbsentToday:    absentToday,
		OnLeaveToday:   onLeaveToday,
		AttendanceRate: rate,
		Departments:    departments,
	}, nil
}
