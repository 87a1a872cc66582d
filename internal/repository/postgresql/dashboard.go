package postgresql

import (
	"context"
	"fmt"

	"github.com/staffloop/hr-portal-go/internal/domain/dashboard"
	"github.com/staffloop/hr-portal-go/internal/domain/leave"
	"github.com/staffloop/hr-portal-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.Repository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountPresentOn implements dashboard.Repository.
func (r *dashboardRepository) CountPresentOn(ctx context.Context, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date = $1::date AND status = 'present'`, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count present attendances: %w", err)
	}
	return count, nil
}

// CountPendingLeaves implements dashboard.Repository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// RecentPendingLeaves implements dashboard.Repository.
func (r *dashboardRepository) RecentPendingLeaves(ctx context.Context, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.days_count, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
			   lr.applied_at, e.full_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.employee_id = lr.employee_id
		WHERE lr.status = 'pending'
		ORDER BY lr.applied_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent pending leaves: %w", err)
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

// DepartmentHeadcounts implements dashboard.Repository.
func (r *dashboardRepository) DepartmentHeadcounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*)
		FROM employees
		WHERE status = 'active'
		GROUP BY department
		ORDER BY department
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load department headcounts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DepartmentCount
	for rows.Next() {
		var dc dashboard.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department headcount: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department headcounts: %w", err)
	}

	return counts, nil
}
