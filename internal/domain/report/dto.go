package report

import (
	"fmt"
	"time"

	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportRow is one employee's aggregate for the month. Computed on every
// request, never persisted. Employees with no attendance rows in the window
// do not get a row.
type ReportRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	HalfDay      int     `json:"half_day"`
	Leave        int     `json:"leave"`
	TotalHours   float64 `json:"total_hours"`
}

// AttendanceRate derives the presence percentage for the row, counting a
// half-day as half a presence. Zero recorded days yields 0, not NaN.
func (r ReportRow) AttendanceRate() float64 {
	total := r.Present + r.Absent + r.HalfDay + r.Leave
	if total == 0 {
		return 0
	}
	return (float64(r.Present) + 0.5*float64(r.HalfDay)) / float64(total) * 100
}

type MonthlyReport struct {
	Month       int         `json:"month"`
	Year        int         `json:"year"`
	GeneratedAt string      `json:"generated_at"`
	Rows        []ReportRow `json:"data"`
}
