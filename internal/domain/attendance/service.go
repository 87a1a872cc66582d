package attendance

import "context"

type Service interface {
	// Mark creates exactly one record for (employee_id, date). Any
	// authenticated caller may mark attendance for any employee; there is no
	// per-record ownership restriction.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// Checkout records a check-out time on an existing record and derives
	// the working hours from the stored check-in.
	Checkout(ctx context.Context, id string, req CheckoutRequest) (AttendanceResponse, error)

	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}
