package schedule

import (
	"context"
	"time"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

// DaySlot is one resolved day on the schedule view.
type DaySlot struct {
	IsWorkDay bool   `json:"is_work_day"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type ScheduleResponse struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Date         string             `json:"date"`
	Weekday      string             `json:"weekday"`
	Day          DaySlot            `json:"day"`
	Week         map[string]DaySlot `json:"week"`
}

// ScheduleService resolves an employee's schedule for a date plus the full
// weekly view the UI renders.
type ScheduleService interface {
	GetSchedule(ctx context.Context, employeeID string, date time.Time) (ScheduleResponse, error)
}

type ScheduleServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewScheduleService(employeeRepo employee.EmployeeRepository, loc *time.Location) ScheduleService {
	return &ScheduleServiceImpl{
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// GetSchedule implements ScheduleService. A zero date means today.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, employeeID string, date time.Time) (ScheduleResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return ScheduleResponse{}, err
	}

	if date.IsZero() {
		nowLocal := s.now().In(s.loc)
		date = time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)
	}

	day, err := emp.ScheduleFor(date)
	if err != nil {
		return ScheduleResponse{}, err
	}

	week := make(map[string]DaySlot, len(schedule.AllWeekdays))
	for _, tag := range schedule.AllWeekdays {
		week[string(tag)] = daySlot(emp, tag)
	}

	return ScheduleResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Date:         date.Format("2006-01-02"),
		Weekday:      string(schedule.WeekdayOf(date)),
		Day: DaySlot{
			IsWorkDay: day.IsWorkDay,
			Start:     day.Start.String(),
			End:       day.End.String(),
		},
		Week: week,
	}, nil
}

func daySlot(emp employee.Employee, tag schedule.Weekday) DaySlot {
	slot := DaySlot{
		Start: schedule.DefaultStart.String(),
		End:   schedule.DefaultEnd.String(),
	}
	for _, d := range emp.WorkDays {
		if d == tag {
			slot.IsWorkDay = true
			break
		}
	}
	if times, ok := emp.WorkSchedule[tag]; ok {
		slot.Start = times.Start.String()
		slot.End = times.End.String()
	}
	return slot
}
