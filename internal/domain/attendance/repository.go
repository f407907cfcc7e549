package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance events.
type AttendanceRepository interface {
	// Create inserts a new event. The unique index on
	// (employee_id, date, direction) makes concurrent duplicates impossible;
	// the losing insert returns ErrDuplicateEvent.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Exists reports whether an event of the given direction is already
	// recorded for (employee, date)
	Exists(ctx context.Context, employeeID string, date time.Time, direction Direction) (bool, error)

	// ListByEmployeeAndRange retrieves events of one direction for an
	// employee with date in [from, to)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, direction Direction) ([]Attendance, error)

	// ListByDate retrieves all events of one direction on a date,
	// employee names joined
	ListByDate(ctx context.Context, date time.Time, direction Direction) ([]Attendance, error)

	// List retrieves events with filters and pagination, employee names joined
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// UpdateClassification overwrites the derived classification fields of
	// one event (the reclassification path)
	UpdateClassification(ctx context.Context, id string, status Status, lateMinutes int, penalty decimal.Decimal) error
}
