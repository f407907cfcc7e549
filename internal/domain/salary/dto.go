package salary

import (
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SALARY DTOs
// ========================================

type ComputeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *ComputeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a UUID"})
	}
	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBonusRequest struct {
	ID         string
	TotalBonus decimal.Decimal `json:"total_bonus"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *UpdateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.TotalBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_bonus", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySalaryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	TotalPenalty decimal.Decimal `json:"total_penalty"`
	TotalBonus   decimal.Decimal `json:"total_bonus"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	WorkDays     int             `json:"work_days"`
	PresentDays  int             `json:"present_days"`
	LateDays     int             `json:"late_days"`
	AbsentDays   int             `json:"absent_days"`
	DayOffDays   int             `json:"day_off_days"`
	Notes        string          `json:"notes,omitempty"`
	IsPaid       bool            `json:"is_paid"`
	PaidDate     *string         `json:"paid_date,omitempty"`
	UpdatedAt    string          `json:"updated_at"`
}

// ReportTotals aggregates the report rows the way the HR payroll screen
// displays them.
type ReportTotals struct {
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	TotalPenalty     decimal.Decimal `json:"total_penalty"`
	TotalWorkDays    int             `json:"total_work_days"`
	TotalPresentDays int             `json:"total_present_days"`
	TotalAbsentDays  int             `json:"total_absent_days"`
	TotalLateDays    int             `json:"total_late_days"`
	TotalDayOffDays  int             `json:"total_day_off_days"`
	PaidCount        int             `json:"paid_count"`
	UnpaidCount      int             `json:"unpaid_count"`
}

type ReportRequest struct {
	Year       int
	Month      int
	EmployeeID string
	Force      bool
}

type ReportResponse struct {
	Year     int                     `json:"year"`
	Month    int                     `json:"month"`
	Salaries []MonthlySalaryResponse `json:"salaries"`
	Totals   ReportTotals            `json:"totals"`
}
