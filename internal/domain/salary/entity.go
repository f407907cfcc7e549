package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalary is one employee's salary record for a (year, month) period.
// Everything except TotalBonus and Notes is derived from attendance data plus
// the employee's compensation policy; recompute regenerates those fields in
// full. The row is a materialized cache, never a source of truth.
type MonthlySalary struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int

	BasicSalary  decimal.Decimal
	TotalPenalty decimal.Decimal
	TotalBonus   decimal.Decimal
	NetSalary    decimal.Decimal

	WorkDays    int
	PresentDays int
	LateDays    int
	AbsentDays  int
	DayOffDays  int

	Notes    string
	IsPaid   bool
	PaidDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
}
