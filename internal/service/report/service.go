package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewReportService(attendanceRepo attendance.Repository) report.Service {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo}
}

// GenerateMonthly implements report.Service.
//
// Aggregation groups the month's ledger entries per employee. Records without
// working hours contribute to counts but add nothing to total_hours.
// Employees with no entries in the window are omitted rather than
// zero-filled. The scan runs at the storage layer's normal read consistency;
// rows written while the report runs may or may not be included.
func (s *ReportServiceImpl) GenerateMonthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load attendance for window: %w", err)
	}

	byEmployee := make(map[string]*report.ReportRow)
	for _, r := range records {
		row, ok := byEmployee[r.EmployeeID]
		if !ok {
			row = &report.ReportRow{EmployeeID: r.EmployeeID}
			if r.EmployeeName != nil {
				row.EmployeeName = *r.EmployeeName
			}
			byEmployee[r.EmployeeID] = row
		}

		switch r.Status {
		case attendance.StatusPresent:
			row.Present++
		case attendance.StatusAbsent:
			row.Absent++
		case attendance.StatusHalfDay:
			row.HalfDay++
		case attendance.StatusLeave:
			row.Leave++
		}

		if r.WorkingHours != nil {
			row.TotalHours += *r.WorkingHours
		}
	}

	rows := make([]report.ReportRow, 0, len(byEmployee))
	for _, row := range byEmployee {
		row.TotalHours = math.Round(row.TotalHours*100) / 100
		rows = append(rows, *row)
	}
	// Deterministic output for the same window and data.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return report.MonthlyReport{
		Month:       req.Month,
		Year:        req.Year,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}
