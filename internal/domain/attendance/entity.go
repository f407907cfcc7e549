package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction of an attendance event.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Status of a check-in event. Check-outs always carry StatusOntime; lateness
// is only assessed on arrival.
type Status string

const (
	StatusOntime Status = "ontime"
	StatusLate   Status = "late"
	StatusEarly  Status = "early"
	StatusDayOff Status = "day_off"

	// StatusAbsent exists only as an aggregate concept on monthly salary
	// rows (scheduled work days minus attended days). The classifier never
	// stores it on an attendance event.
	StatusAbsent Status = "absent"
)

// Attendance is one check-in or check-out event. At most one row exists per
// (employee, date, direction); the database enforces this with a unique index.
// Rows are immutable after creation except for the reclassification path,
// which may overwrite Status, LateMinutes and PenaltyAmount.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockTime     time.Time
	Direction     Direction
	Status        Status
	LateMinutes   int
	PenaltyAmount decimal.Decimal
	Notes         string
	CreatedAt     time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
}
