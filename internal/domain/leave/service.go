package leave

import (
	"context"

	"github.com/staffloop/hr-portal-go/internal/domain/auth"
)

type Service interface {
	// Apply creates a pending request. Any authenticated caller may file for
	// any employee_id; HR routinely files on an employee's behalf.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)

	// Approve and Reject require an elevated actor and succeed at most once
	// per request; a request in a terminal state stays there.
	Approve(ctx context.Context, actor auth.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor auth.Actor, id string) (LeaveResponse, error)
}
