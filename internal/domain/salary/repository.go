package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRepository defines data access methods for monthly salary records.
type SalaryRepository interface {
	// GetOrCreate atomically fetches or inserts the record for
	// (employee, year, month). basicSalary seeds a newly created row;
	// the unique index guarantees at most one row survives a race.
	GetOrCreate(ctx context.Context, employeeID string, year, month int, basicSalary decimal.Decimal) (MonthlySalary, error)

	// GetByID retrieves a salary record by ID
	GetByID(ctx context.Context, id string) (MonthlySalary, error)

	// ReplaceDerived overwrites all derived fields of a record in one
	// statement. TotalBonus, Notes and the paid flags are left untouched.
	ReplaceDerived(ctx context.Context, rec MonthlySalary) (MonthlySalary, error)

	// UpdateBonus sets the manually adjusted inputs
	UpdateBonus(ctx context.Context, id string, bonus decimal.Decimal, notes *string, netSalary decimal.Decimal) (MonthlySalary, error)

	// MarkPaid flags a record as paid on the given date
	MarkPaid(ctx context.Context, id string, paidDate time.Time) (MonthlySalary, error)
}
