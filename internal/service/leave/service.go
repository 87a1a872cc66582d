package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffloop/hr-portal-go/internal/domain/auth"
	"github.com/staffloop/hr-portal-go/internal/domain/employee"
	"github.com/staffloop/hr-portal-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Apply implements leave.Service.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		// Recomputed here regardless of what the client sent; the submitted
		// days_count is a UI hint only.
		DaysCount: leave.InclusiveDays(startDate, endDate),
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return leave.ToResponse(created), nil
}

// List implements leave.Service.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor auth.Actor, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, actor, id, leave.StatusApproved)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor auth.Actor, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, actor, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, actor auth.Actor, id string, status leave.RequestStatus) (leave.LeaveResponse, error) {
	if !actor.Role.IsElevated() {
		return leave.LeaveResponse{}, leave.ErrReviewNotAllowed
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status.IsTerminal() {
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	reviewedAt := time.Now().UTC()
	// Conditional update keyed on pending status: under a concurrent double
	// review exactly one call transitions the row.
	transitioned, err := s.leaveRepo.MarkReviewed(ctx, id, status, actor.FullName, reviewedAt)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if !transitioned {
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	request.Status = status
	request.ReviewedBy = &actor.FullName
	request.ReviewedAt = &reviewedAt
	return leave.ToResponse(request), nil
}
