package dashboard

import "github.com/staffloop/hr-portal-go/internal/domain/leave"

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type Stats struct {
	TotalEmployees  int                   `json:"total_employees"`
	PresentToday    int                   `json:"present_today"`
	PendingLeaves   int                   `json:"pending_leaves"`
	RecentLeaves    []leave.LeaveResponse `json:"recent_leaves"`
	DepartmentStats []DepartmentCount     `json:"department_stats"`
	AttendanceRate  float64               `json:"attendance_rate"`
}
