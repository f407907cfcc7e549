package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

type fakeEmployeeRepo struct {
	emp employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != f.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return []employee.Employee{f.emp}, 1, nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	return []employee.Employee{f.emp}, nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

func testService() *ScheduleServiceImpl {
	emp := employee.Employee{
		ID:        "e1",
		FirstName: "Aziza",
		LastName:  "Karimova",
		WorkDays:  []schedule.Weekday{schedule.Monday, schedule.Wednesday},
		WorkSchedule: schedule.WeekSchedule{
			schedule.Monday: {
				Start: schedule.TimeOfDay{Hour: 10},
				End:   schedule.TimeOfDay{Hour: 19},
			},
		},
	}
	return &ScheduleServiceImpl{
		employeeRepo: &fakeEmployeeRepo{emp: emp},
		loc:          time.UTC,
		now:          func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestGetSchedule_ConfiguredWorkDay(t *testing.T) {
	svc := testService()

	// 2024-01-01 is a Monday.
	resp, err := svc.GetSchedule(context.Background(), "e1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.Date)
	assert.Equal(t, "monday", resp.Weekday)
	assert.True(t, resp.Day.IsWorkDay)
	assert.Equal(t, "10:00", resp.Day.Start)
	assert.Equal(t, "19:00", resp.Day.End)
}

func TestGetSchedule_WorkDayWithDefaultTimes(t *testing.T) {
	svc := testService()

	// Wednesday is a work day without configured times.
	resp, err := svc.GetSchedule(context.Background(), "e1", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resp.Day.IsWorkDay)
	assert.Equal(t, "09:00", resp.Day.Start)
	assert.Equal(t, "18:00", resp.Day.End)
}

func TestGetSchedule_ZeroDateMeansToday(t *testing.T) {
	svc := testService()

	resp, err := svc.GetSchedule(context.Background(), "e1", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.Date)
}

func TestGetSchedule_WeeklyView(t *testing.T) {
	svc := testService()

	resp, err := svc.GetSchedule(context.Background(), "e1", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Saturday itself is off.
	assert.False(t, resp.Day.IsWorkDay)

	require.Len(t, resp.Week, 7)
	assert.True(t, resp.Week["monday"].IsWorkDay)
	assert.Equal(t, "10:00", resp.Week["monday"].Start)
	assert.True(t, resp.Week["wednesday"].IsWorkDay)
	assert.Equal(t, "09:00", resp.Week["wednesday"].Start)
	assert.False(t, resp.Week["sunday"].IsWorkDay)
}

func TestGetSchedule_UnknownEmployee(t *testing.T) {
	svc := testService()

	_, err := svc.GetSchedule(context.Background(), "missing", time.Time{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
