package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffloop/hr-portal-go/internal/domain/employee"
	"github.com/staffloop/hr-portal-go/internal/pkg/database"
	"github.com/staffloop/hr-portal-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joined, _ := time.Parse("2006-01-02", req.DateOfJoining)
	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:    req.EmployeeID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		Designation:   req.Designation,
		DateOfJoining: joined,
		Status:        status,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(e), nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Read-modify-write, so the fetch and the update share a transaction.
	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return err
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		joined, _ := time.Parse("2006-01-02", req.DateOfJoining)
		existing.FullName = req.FullName
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.Department = req.Department
		existing.Designation = req.Designation
		existing.DateOfJoining = joined
		if req.Status != "" {
			existing.Status = employee.Status(req.Status)
		}

		updated, err = s.employeeRepo.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// Deactivate implements employee.Service.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}
