package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// GetActive retrieves all active employees
	GetActive(ctx context.Context) ([]Employee, error)

	// SetActive toggles the soft-disable flag
	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes an employee; attendance and salary rows cascade
	Delete(ctx context.Context, id string) error
}
