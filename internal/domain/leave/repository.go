package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound when no row matches.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	// MarkReviewed transitions the request out of pending with a single
	// conditional update, so concurrent reviews resolve to exactly one
	// winner. Returns false when the request was no longer pending.
	MarkReviewed(ctx context.Context, id string, status RequestStatus, reviewedBy string, reviewedAt time.Time) (bool, error)
}
