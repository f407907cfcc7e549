package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

// SumNetSalary implements dashboard.DashboardRepository.
func (r *dashboardRepository) SumNetSalary(ctx context.Context, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var sum decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(net_salary), 0)
		FROM monthly_salaries
		WHERE year = $1 AND month = $2
	`, year, month).Scan(&sum)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to sum net salary: %w", err)
	}

	return sum, nil
}

// CountCheckedInOn implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountCheckedInOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT employee_id)
		FROM attendances
		WHERE date = $1 AND direction = 'in'
	`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-in employees: %w", err)
	}

	return count, nil
}
