package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/attendance-backend-go/internal/domain/leave"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days,
	l.reason, l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at`

const leaveJoinedColumns = leaveColumns + `,
	e.full_name, e.employee_code, e.department, e.position`

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leaves (
			id, employee_id, leave_type, start_date, end_date, days, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID,
		l.EmployeeID,
		l.LeaveType,
		l.StartDate,
		l.EndDate,
		l.Days,
		l.Reason,
		l.Status,
	).Scan(&l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Days,
		&l.Reason, &l.Status, &l.DecidedBy, &l.DecidedAt, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeCode, &l.Department, &l.Position,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return &l, nil
}

// SetDecision implements leave.LeaveRepository.
func (r *leaveRepository) SetDecision(ctx context.Context, id string, status leave.Status, decidedBy string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the transition single-shot: only a pending
	// row can be decided, so rival deciders cannot both succeed.
	query := `
		UPDATE leaves
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, decidedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to decide leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// distinguish missing from already-processed
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, leave.ErrLeaveAlreadyProcessed
	}

	return r.GetByID(ctx, id)
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		baseWhere += fmt.Sprintf(" AND l.leave_type = $%d", argIdx)
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM leaves l WHERE ` + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere + `
		ORDER BY l.created_at DESC
	`
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	list, err := collectLeaves(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListApprovedOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, date string, employeeID *string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "l.status = 'approved' AND l.start_date <= $1 AND l.end_date >= $1"
	args := []interface{}{date}
	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND l.employee_id = $2"
		args = append(args, *employeeID)
	}

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere + `
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// StatusStats implements leave.LeaveRepository.
func (r *leaveRepository) StatusStats(ctx context.Context, employeeID *string) (*leave.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	if employeeID != nil && *employeeID != "" {
		baseWhere = "employee_id = $1"
		args = append(args, *employeeID)
	}

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*),
			COALESCE(SUM(days) FILTER (WHERE status = 'approved'), 0)
		FROM leaves
		WHERE ` + baseWhere

	var counts leave.StatusCounts
	err := q.QueryRow(ctx, query, args...).Scan(
		&counts.Pending, &counts.Approved, &counts.Rejected, &counts.Total, &counts.ApprovedDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave stats: %w", err)
	}
	return &counts, nil
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var list []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Days,
			&l.Reason, &l.Status, &l.DecidedBy, &l.DecidedAt, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName, &l.EmployeeCode, &l.Department, &l.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave rows: %w", err)
	}
	return list, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
