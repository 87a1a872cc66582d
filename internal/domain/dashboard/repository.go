package dashboard

import (
	"context"

	"github.com/staffloop/hr-portal-go/internal/domain/leave"
)

type Repository interface {
	CountActiveEmployees(ctx context.Context) (int, error)
	CountPresentOn(ctx context.Context, date string) (int, error)
	CountPendingLeaves(ctx context.Context) (int, error)
	RecentPendingLeaves(ctx context.Context, limit int) ([]leave.LeaveRequest, error)
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentCount, error)
}
