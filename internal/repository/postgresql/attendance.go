package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, clock_time, direction, status,
			late_minutes, penalty_amount, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockTime,
		att.Direction,
		att.Status,
		att.LateMinutes,
		att.PenaltyAmount,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateEvent
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// Exists implements attendance.AttendanceRepository.
func (r *attendanceRepository) Exists(ctx context.Context, employeeID string, date time.Time, direction attendance.Direction) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances
			WHERE employee_id = $1 AND date = $2 AND direction = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, direction).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, direction attendance.Direction) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_time, direction, status,
			   late_minutes, penalty_amount, notes, created_at
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2 AND date < $3
		  AND direction = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockTime, &att.Direction,
			&att.Status, &att.LateMinutes, &att.PenaltyAmount, &att.Notes, &att.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time, direction attendance.Direction) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_time, a.direction, a.status,
			   a.late_minutes, a.penalty_amount, a.notes, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.position AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1 AND a.direction = $2
		ORDER BY a.clock_time
	`

	rows, err := q.Query(ctx, query, date, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.clock_time, a.direction, a.status,
			   a.late_minutes, a.penalty_amount, a.notes, a.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.position AS employee_position
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.clock_time DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := scanAttendanceRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// UpdateClassification implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateClassification(ctx context.Context, id string, status attendance.Status, lateMinutes int, penalty decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $2, late_minutes = $3, penalty_amount = $4
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status, lateMinutes, penalty).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance classification: %w", err)
	}

	return nil
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockTime, &att.Direction,
			&att.Status, &att.LateMinutes, &att.PenaltyAmount, &att.Notes, &att.CreatedAt,
			&att.EmployeeName, &att.EmployeePosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}
