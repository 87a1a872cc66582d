package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByEmployeeID looks up an employee by the business key. Returns
	// ErrEmployeeNotFound when no row matches.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees in insertion order.
	ListActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, e Employee) (Employee, error)

	// Deactivate soft-deletes by flipping status to inactive.
	Deactivate(ctx context.Context, id string) error
}
