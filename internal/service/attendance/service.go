package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/domain/employee"
	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.Service.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Inactive employees still resolve: marking leave for someone on their
	// way out is a valid ledger entry.
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	record := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       attendance.Status(req.Status),
		WorkingHours: attendance.ComputeWorkingHours(req.CheckIn, req.CheckOut),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		// The (employee_id, date) unique constraint is the arbiter for
		// concurrent marks: the loser lands here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return attendance.ToResponse(created), nil
}

// Checkout implements attendance.Service. The check-in at record creation
// and the check-out later is the normal flow; WorkingHours stays unset until
// this runs. An earlier check-out is overwritten, hours included.
func (s *AttendanceServiceImpl) Checkout(ctx context.Context, id string, req attendance.CheckoutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	// Ordering can only be checked against the stored check-in, so it lives
	// here rather than in the request's Validate.
	in, _ := validator.IsValidTimeOfDay(record.CheckIn)
	out, _ := validator.IsValidTimeOfDay(req.CheckOut)
	if !out.After(in) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "check_out",
			Message: "check_out must be after check_in",
		}}
	}

	checkOut := req.CheckOut
	hours := attendance.ComputeWorkingHours(record.CheckIn, &checkOut)
	if err := s.attendanceRepo.SetCheckOut(ctx, id, checkOut, hours); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	record.CheckOut = &checkOut
	record.WorkingHours = hours
	return attendance.ToResponse(record), nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}
