package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

// Employee carries identity plus the compensation policy the attendance and
// salary engines read: weekly work-day set, per-day schedule windows, grace
// period and per-minute late penalty.
type Employee struct {
	ID                  string
	FirstName           string
	LastName            string
	Position            string
	Department          string
	Phone               *string
	Email               *string
	PhotoURL            *string
	WorkDays            []schedule.Weekday
	WorkSchedule        schedule.WeekSchedule
	MonthlySalary       decimal.Decimal
	LatePenaltyPerMinute decimal.Decimal
	AllowedLateMinutes  int
	DailyWorkHours      decimal.Decimal
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ScheduleFor resolves the employee's schedule for a calendar date.
func (e Employee) ScheduleFor(date time.Time) (schedule.DaySchedule, error) {
	return schedule.Resolve(e.WorkDays, e.WorkSchedule, date)
}
