package response

import (
	"errors"
	"net/http"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/domain/auth"
	"github.com/staffloop/hr-portal-go/internal/domain/employee"
	"github.com/staffloop/hr-portal-go/internal/domain/leave"
	"github.com/staffloop/hr-portal-go/internal/domain/user"
	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyRegistered):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrElevatedRoleRequired):
		Forbidden(w, "HR or admin role required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrReviewNotAllowed):
		Forbidden(w, "Only HR or admin can review leave requests")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
