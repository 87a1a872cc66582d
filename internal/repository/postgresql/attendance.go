package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository. A duplicate (employee_id, date)
// insert surfaces the schema's unique-violation error unchanged; the service
// layer maps it to the conflict error.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, check_out, status, working_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, string(a.Status), a.WorkingHours,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return a, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.working_hours, a.created_at, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.id = $1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.WorkingHours, &a.CreatedAt, &a.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

// SetCheckOut implements attendance.Repository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut string, workingHours *float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, working_hours = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, checkOut, workingHours)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.Status, &a.WorkingHours, &a.CreatedAt, &a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.working_hours, a.created_at, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE ($1 = '' OR a.employee_id = $1)
		  AND ($2 = '' OR a.date = $2::date)
		ORDER BY a.created_at
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return scanAttendanceRows(rows)
}

// ListByMonth implements attendance.Repository.
func (r *attendanceRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	periodStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.working_hours, a.created_at, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.employee_id, a.date
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for month: %w", err)
	}

	return scanAttendanceRows(rows)
}
