package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hr-portal-go/internal/domain/leave"
	"github.com/staffloop/hr-portal-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.Repository.
func (r *leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, days_count, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, applied_at
	`

	err := q.QueryRow(ctx, query,
		lr.EmployeeID, string(lr.LeaveType), lr.StartDate, lr.EndDate,
		lr.DaysCount, lr.Reason, string(lr.Status),
	).Scan(&lr.ID, &lr.AppliedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.days_count, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
			   lr.applied_at, e.full_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.employee_id = lr.employee_id
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
		&lr.DaysCount, &lr.Reason, &lr.Status, &lr.ReviewedBy, &lr.ReviewedAt,
		&lr.AppliedAt, &lr.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

// List implements leave.Repository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.days_count, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
			   lr.applied_at, e.full_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.employee_id = lr.employee_id
		WHERE ($1 = '' OR lr.employee_id = $1)
		  AND ($2 = '' OR lr.status = $2)
		ORDER BY lr.applied_at DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.DaysCount, &lr.Reason, &lr.Status, &lr.ReviewedBy, &lr.ReviewedAt,
			&lr.AppliedAt, &lr.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// MarkReviewed implements leave.Repository. The status predicate makes the
// transition atomic: of two concurrent reviews only one update matches the
// pending row.
func (r *leaveRequestRepository) MarkReviewed(ctx context.Context, id string, status leave.RequestStatus, reviewedBy string, reviewedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), reviewedBy, reviewedAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark leave request reviewed: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
