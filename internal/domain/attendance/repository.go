package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new attendance record. The (employee_id, date) unique
	// constraint is enforced at the schema level; a duplicate insert surfaces
	// as a unique-violation error from the driver.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByID returns ErrAttendanceNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// SetCheckOut writes the check-out time and derived hours onto an
	// existing record. Returns ErrAttendanceNotFound when no row matches.
	SetCheckOut(ctx context.Context, id string, checkOut string, workingHours *float64) error

	// List returns records joined with the employee's display name,
	// insertion-ordered, narrowed by the filter.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// ListByMonth returns all records whose date falls inside the calendar
	// month, joined with the employee's display name.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)
}
