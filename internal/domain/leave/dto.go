package leave

import (
	"time"

	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`

	// DaysCount is accepted for UI compatibility but ignored: the span is
	// always recomputed server-side.
	DaysCount int `json:"days_count,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !Type(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: casual, sick, vacation",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the leave listing. Zero values mean no filtering.
type ListFilter struct {
	EmployeeID string
	Status     string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !RequestStatus(f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DaysCount    int     `json:"days_count"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	AppliedAt    string  `json:"applied_at"`
}

func ToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		LeaveType:  string(lr.LeaveType),
		StartDate:  lr.StartDate.Format("2006-01-02"),
		EndDate:    lr.EndDate.Format("2006-01-02"),
		DaysCount:  lr.DaysCount,
		Reason:     lr.Reason,
		Status:     string(lr.Status),
		ReviewedBy: lr.ReviewedBy,
		AppliedAt:  lr.AppliedAt.Format(time.RFC3339),
	}
	if lr.EmployeeName != nil {
		resp.EmployeeName = *lr.EmployeeName
	}
	if lr.ReviewedAt != nil {
		formatted := lr.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &formatted
	}
	return resp
}
