package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	// CreateEmployee registers a new employee with compensation policy
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates profile and compensation fields
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves employees with filters and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// SetEmployeeActive soft-enables or soft-disables an employee;
	// attendance history survives either way
	SetEmployeeActive(ctx context.Context, id string, active bool) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all derived records
	DeleteEmployee(ctx context.Context, id string) error
}
