package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

type fakeDashboardRepo struct {
	activeCount    int
	checkedInCount int
	monthNet       decimal.Decimal
}

func (f *fakeDashboardRepo) CountActiveEmployees(_ context.Context) (int, error) {
	return f.activeCount, nil
}

func (f *fakeDashboardRepo) SumNetSalary(_ context.Context, _, _ int) (decimal.Decimal, error) {
	return f.monthNet, nil
}

func (f *fakeDashboardRepo) CountCheckedInOn(_ context.Context, _ time.Time) (int, error) {
	return f.checkedInCount, nil
}

type fakeAttendanceRepo struct {
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.rows = append(f.rows, att)
	return att, nil
}

func (f *fakeAttendanceRepo) Exists(_ context.Context, _ string, _ time.Time, _ attendance.Direction) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time, _ attendance.Direction) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time, direction attendance.Direction) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.rows {
		if r.Date.Equal(date) && r.Direction == direction {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return f.rows, int64(len(f.rows)), nil
}

func (f *fakeAttendanceRepo) UpdateClassification(_ context.Context, _ string, _ attendance.Status, _ int, _ decimal.Decimal) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

func weekdaysMonToFri() []schedule.Weekday {
	return []schedule.Weekday{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday,
	}
}

func TestToday_BoardAndCounts(t *testing.T) {
	// 2024-01-01 is a Monday.
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	name1 := "Aziza Karimova"
	attRepo := &fakeAttendanceRepo{rows: []attendance.Attendance{
		{
			ID: "a1", EmployeeID: "e1", Date: date,
			ClockTime: date.Add(9 * time.Hour), Direction: attendance.DirectionIn,
			Status: attendance.StatusOntime, PenaltyAmount: decimal.Zero,
			EmployeeName: &name1,
		},
		{
			ID: "a2", EmployeeID: "e2", Date: date,
			ClockTime: date.Add(9*time.Hour + 25*time.Minute), Direction: attendance.DirectionIn,
			Status: attendance.StatusLate, LateMinutes: 15,
			PenaltyAmount: decimal.NewFromInt(15000),
		},
		{
			ID: "a3", EmployeeID: "e1", Date: date,
			ClockTime: date.Add(18 * time.Hour), Direction: attendance.DirectionOut,
			Status: attendance.StatusOntime, PenaltyAmount: decimal.Zero,
		},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", IsActive: true, WorkDays: weekdaysMonToFri()},
		{ID: "e2", IsActive: true, WorkDays: weekdaysMonToFri()},
		{ID: "e3", IsActive: true, WorkDays: weekdaysMonToFri()},
		{ID: "e4", IsActive: true, WorkDays: []schedule.Weekday{schedule.Saturday}},
		{ID: "e5", IsActive: false, WorkDays: weekdaysMonToFri()},
	}}
	dashRepo := &fakeDashboardRepo{
		activeCount:    4,
		checkedInCount: 2,
		monthNet:       decimal.NewFromInt(12000000),
	}

	svc := &DashboardServiceImpl{
		dashboardRepo:  dashRepo,
		attendanceRepo: attRepo,
		employeeRepo:   empRepo,
		loc:            time.UTC,
		now:            func() time.Time { return date.Add(19 * time.Hour) },
	}

	resp, err := svc.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.Date)
	assert.Equal(t, 2, resp.TotalCheckIns)
	assert.Equal(t, 1, resp.TotalCheckOuts)
	assert.Equal(t, 2, resp.PresentCount)
	assert.Equal(t, 1, resp.LateCount)
	assert.Equal(t, 0, resp.DayOffCount)
	// e3 works Mondays and never checked in; e4 is off on Mondays and e5
	// is inactive, so neither counts.
	assert.Equal(t, 1, resp.AbsentCount)
	assert.Equal(t, 4, resp.ActiveCount)
	assert.True(t, resp.MonthNetSalary.Equal(decimal.NewFromInt(12000000)))

	require.Len(t, resp.CheckIns, 2)
	assert.Equal(t, "Aziza Karimova", resp.CheckIns[0].EmployeeName)
	assert.Equal(t, "09:00", resp.CheckIns[0].Time)
	assert.Equal(t, "late", resp.CheckIns[1].Status)
}

func TestToday_EmptyBoard(t *testing.T) {
	svc := &DashboardServiceImpl{
		dashboardRepo:  &fakeDashboardRepo{monthNet: decimal.Zero},
		attendanceRepo: &fakeAttendanceRepo{},
		employeeRepo:   &fakeEmployeeRepo{},
		loc:            time.UTC,
		now:            func() time.Time { return time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC) },
	}

	resp, err := svc.Today(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.CheckIns)
	assert.Empty(t, resp.CheckOuts)
	assert.Equal(t, 0, resp.AbsentCount)
	assert.True(t, resp.MonthNetSalary.IsZero())
}
