package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository provides the read-only aggregates behind the overview
// screen.
type DashboardRepository interface {
	// CountActiveEmployees returns the number of non-disabled employees
	CountActiveEmployees(ctx context.Context) (int, error)

	// SumNetSalary totals net_salary over all records of a period
	SumNetSalary(ctx context.Context, year, month int) (decimal.Decimal, error)

	// CountCheckedInOn returns distinct employees with an in-event on date
	CountCheckedInOn(ctx context.Context, date time.Time) (int, error)
}
