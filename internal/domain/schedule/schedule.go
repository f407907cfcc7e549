package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday is the schedule tag for a day of the week. Tags are fixed lowercase
// English identifiers; they are never derived from locale-dependent date
// formatting.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the tags in calendar order, Monday first.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayTags = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf maps a calendar date to its schedule tag.
func WeekdayOf(t time.Time) Weekday {
	return weekdayTags[t.Weekday()]
}

// IsValidWeekday reports whether s is one of the seven schedule tags.
func IsValidWeekday(s string) bool {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock time without a date, serialized as "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Default schedule window applied when an employee's work schedule has no
// entry for a weekday, including weekdays that are work days.
var (
	DefaultStart = TimeOfDay{Hour: 9}
	DefaultEnd   = TimeOfDay{Hour: 18}
)

// ParseTimeOfDay parses "HH:MM" in 24-hour form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// At combines the clock time with a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, loc)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DayTimes is one weekday's configured window.
type DayTimes struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// WeekSchedule maps weekday tags to configured windows. Entries for days
// outside the employee's work-day set are allowed and ignored by the resolver.
type WeekSchedule map[Weekday]DayTimes

// DaySchedule is the resolved schedule for one calendar date.
type DaySchedule struct {
	IsWorkDay bool
	Start     TimeOfDay
	End       TimeOfDay
}

// Resolve answers whether date is a work day for the given weekly
// configuration and what the scheduled window is. Missing schedule entries
// fall back to 09:00-18:00 rather than failing. Pure function.
func Resolve(workDays []Weekday, week WeekSchedule, date time.Time) (DaySchedule, error) {
	if date.IsZero() {
		return DaySchedule{}, ErrInvalidDate
	}

	tag := WeekdayOf(date)

	resolved := DaySchedule{
		Start: DefaultStart,
		End:   DefaultEnd,
	}
	for _, d := range workDays {
		if d == tag {
			resolved.IsWorkDay = true
			break
		}
	}
	if times, ok := week[tag]; ok {
		resolved.Start = times.Start
		resolved.End = times.End
	}

	return resolved, nil
}
