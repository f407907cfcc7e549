package salary

import (
	"context"
)

// SalaryService defines business logic for the monthly aggregator and the
// payroll ledger.
type SalaryService interface {
	// ComputeMonth regenerates one employee's salary record for a period
	// from current attendance data. Deterministic and idempotent; a full
	// replace of the derived fields, never an incremental delta.
	ComputeMonth(ctx context.Context, req ComputeMonthRequest) (MonthlySalaryResponse, error)

	// Report walks all active employees for a period, creating and
	// recomputing records as needed, and returns rows plus totals.
	Report(ctx context.Context, req ReportRequest) (ReportResponse, error)

	// MarkPaid flags a salary record as paid today. Recompute stays
	// possible afterwards; callers gate it if paid periods must freeze.
	MarkPaid(ctx context.Context, salaryID string) (MonthlySalaryResponse, error)

	// UpdateBonus sets the manually adjustable bonus and notes, then
	// refreshes the net salary.
	UpdateBonus(ctx context.Context, req UpdateBonusRequest) (MonthlySalaryResponse, error)
}
