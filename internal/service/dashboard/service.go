package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/staffloop/hr-portal-go/internal/domain/dashboard"
	"github.com/staffloop/hr-portal-go/internal/domain/leave"
)

const recentLeavesLimit = 5

type DashboardServiceImpl struct {
	dashboardRepo dashboard.Repository
}

func NewDashboardService(dashboardRepo dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// Stats implements dashboard.Service.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	totalEmployees, err := s.dashboardRepo.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	presentToday, err := s.dashboardRepo.CountPresentOn(ctx, today)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count present today: %w", err)
	}

	pendingLeaves, err := s.dashboardRepo.CountPendingLeaves(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	recent, err := s.dashboardRepo.RecentPendingLeaves(ctx, recentLeavesLimit)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load recent leaves: %w", err)
	}
	recentResponses := make([]leave.LeaveResponse, 0, len(recent))
	for _, r := range recent {
		recentResponses = append(recentResponses, leave.ToResponse(r))
	}

	departments, err := s.dashboardRepo.DepartmentHeadcounts(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load department headcounts: %w", err)
	}

	rate := 0.0
	if totalEmployees > 0 {
		rate = math.Round(float64(presentToday)/float64(totalEmployees)*100*100) / 100
	}

	return dashboard.Stats{
		TotalEmployees:  totalEmployees,
		PresentToday:    presentToday,
		PendingLeaves:   pendingLeaves,
		RecentLeaves:    recentResponses,
		DepartmentStats: departments,
		AttendanceRate:  rate,
	}, nil
}
