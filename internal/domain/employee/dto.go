package employee

import (
	"time"

	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"date_of_joining"`
	Status        string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Department    string `json:"department"`
	Designation   string `json:"designation,omitempty"`
	DateOfJoining string `json:"date_of_joining"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		FullName:      e.FullName,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		Designation:   e.Designation,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
