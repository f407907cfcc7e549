package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/salary"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.year, s.month,
	s.basic_salary, s.total_penalty, s.total_bonus, s.net_salary,
	s.work_days, s.present_days, s.late_days, s.absent_days, s.day_off_days,
	s.notes, s.is_paid, s.paid_date, s.created_at, s.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.position AS employee_position
`

// GetOrCreate implements salary.SalaryRepository. The no-op conflict update
// lets RETURNING hand back the surviving row whichever insert wins the race.
func (r *salaryRepository) GetOrCreate(ctx context.Context, employeeID string, year, month int, basicSalary decimal.Decimal) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO monthly_salaries (employee_id, year, month, basic_salary)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, year, month)
			DO UPDATE SET employee_id = EXCLUDED.employee_id
			RETURNING *
		)
		SELECT ` + salaryColumns + `
		FROM upserted s
		LEFT JOIN employees e ON e.id = s.employee_id
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, year, month, basicSalary))
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to get or create salary record: %w", err)
	}

	return rec, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM monthly_salaries s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

// ReplaceDerived implements salary.SalaryRepository. One statement so a
// recompute never exposes a half-written record; the manual and payment
// columns are deliberately absent from the SET list.
func (r *salaryRepository) ReplaceDerived(ctx context.Context, rec salary.MonthlySalary) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE monthly_salaries SET
				basic_salary = $2,
				total_penalty = $3,
				net_salary = $4,
				work_days = $5,
				present_days = $6,
				late_days = $7,
				absent_days = $8,
				day_off_days = $9,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + salaryColumns + `
		FROM updated s
		LEFT JOIN employees e ON e.id = s.employee_id
	`

	updated, err := scanSalary(q.QueryRow(ctx, query,
		rec.ID,
		rec.BasicSalary,
		rec.TotalPenalty,
		rec.NetSalary,
		rec.WorkDays,
		rec.PresentDays,
		rec.LateDays,
		rec.AbsentDays,
		rec.DayOffDays,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to replace salary record: %w", err)
	}

	return updated, nil
}

// UpdateBonus implements salary.SalaryRepository.
func (r *salaryRepository) UpdateBonus(ctx context.Context, id string, bonus decimal.Decimal, notes *string, netSalary decimal.Decimal) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE monthly_salaries SET
				total_bonus = $2,
				notes = COALESCE($3, notes),
				net_salary = $4,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + salaryColumns + `
		FROM updated s
		LEFT JOIN employees e ON e.id = s.employee_id
	`

	updated, err := scanSalary(q.QueryRow(ctx, query, id, bonus, notes, netSalary))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to update salary bonus: %w", err)
	}

	return updated, nil
}

// MarkPaid implements salary.SalaryRepository.
func (r *salaryRepository) MarkPaid(ctx context.Context, id string, paidDate time.Time) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE monthly_salaries SET
				is_paid = TRUE,
				paid_date = $2,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + salaryColumns + `
		FROM updated s
		LEFT JOIN employees e ON e.id = s.employee_id
	`

	updated, err := scanSalary(q.QueryRow(ctx, query, id, paidDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to mark salary paid: %w", err)
	}

	return updated, nil
}

func scanSalary(row pgx.Row) (salary.MonthlySalary, error) {
	var rec salary.MonthlySalary
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month,
		&rec.BasicSalary, &rec.TotalPenalty, &rec.TotalBonus, &rec.NetSalary,
		&rec.WorkDays, &rec.PresentDays, &rec.LateDays, &rec.AbsentDays, &rec.DayOffDays,
		&rec.Notes, &rec.IsPaid, &rec.PaidDate, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeePosition,
	)
	if err != nil {
		return salary.MonthlySalary{}, err
	}
	return rec, nil
}
