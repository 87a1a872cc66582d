package attendance

import (
	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	checkIn, checkInOK := validator.IsValidTimeOfDay(r.CheckIn)
	if !checkInOK {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}
	if r.CheckOut != nil {
		checkOut, ok := validator.IsValidTimeOfDay(*r.CheckOut)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be in HH:MM format",
			})
		} else if checkInOK && !checkOut.After(checkIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be after check_in",
			})
		}
	}

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, half-day, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckoutRequest records a check-out on an existing record. A repeated
// check-out overwrites the earlier one and the derived hours follow it.
type CheckoutRequest struct {
	CheckOut string `json:"check_out"`
}

func (r *CheckoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.CheckOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the attendance listing. Zero values mean no filtering.
type ListFilter struct {
	EmployeeID string
	Date       string // exact-date match, "YYYY-MM-DD"
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Status       string   `json:"status"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		Status:       string(a.Status),
		WorkingHours: a.WorkingHours,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	return resp
}
