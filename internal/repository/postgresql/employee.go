package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, first_name, last_name, position, department, phone, email, photo_url,
	work_days, work_schedule, monthly_salary, late_penalty_per_minute,
	allowed_late_minutes, daily_work_hours, is_active, created_at, updated_at
`

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	workDays, err := json.Marshal(emp.WorkDays)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal work days: %w", err)
	}
	workSchedule, err := json.Marshal(emp.WorkSchedule)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal work schedule: %w", err)
	}

	query := `
		INSERT INTO employees (
			first_name, last_name, position, department, phone, email, photo_url,
			work_days, work_schedule, monthly_salary, late_penalty_per_minute,
			allowed_late_minutes, daily_work_hours, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Position,
		emp.Department,
		emp.Phone,
		emp.Email,
		emp.PhotoURL,
		workDays,
		workSchedule,
		emp.MonthlySalary,
		emp.LatePenaltyPerMinute,
		emp.AllowedLateMinutes,
		emp.DailyWorkHours,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	workDays, err := json.Marshal(emp.WorkDays)
	if err != nil {
		return fmt.Errorf("failed to marshal work days: %w", err)
	}
	workSchedule, err := json.Marshal(emp.WorkSchedule)
	if err != nil {
		return fmt.Errorf("failed to marshal work schedule: %w", err)
	}

	query := `
		UPDATE employees SET
			first_name = $2,
			last_name = $3,
			position = $4,
			department = $5,
			phone = $6,
			email = $7,
			photo_url = $8,
			work_days = $9,
			work_schedule = $10,
			monthly_salary = $11,
			late_penalty_per_minute = $12,
			allowed_late_minutes = $13,
			daily_work_hours = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err = q.QueryRow(ctx, query,
		emp.ID,
		emp.FirstName,
		emp.LastName,
		emp.Position,
		emp.Department,
		emp.Phone,
		emp.Email,
		emp.PhotoURL,
		workDays,
		workSchedule,
		emp.MonthlySalary,
		emp.LatePenaltyPerMinute,
		emp.AllowedLateMinutes,
		emp.DailyWorkHours,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR position ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE %s
		ORDER BY first_name, last_name
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, active).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Attendance and salary rows cascade via foreign keys.
	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var workDays, workSchedule []byte

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Position, &emp.Department,
		&emp.Phone, &emp.Email, &emp.PhotoURL,
		&workDays, &workSchedule,
		&emp.MonthlySalary, &emp.LatePenaltyPerMinute,
		&emp.AllowedLateMinutes, &emp.DailyWorkHours,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := json.Unmarshal(workDays, &emp.WorkDays); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to unmarshal work days: %w", err)
	}
	if err := json.Unmarshal(workSchedule, &emp.WorkSchedule); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to unmarshal work schedule: %w", err)
	}
	if emp.WorkSchedule == nil {
		emp.WorkSchedule = schedule.WeekSchedule{}
	}

	return emp, nil
}
