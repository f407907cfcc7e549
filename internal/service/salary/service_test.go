package salary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/salary"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

type fakeSalaryRepo struct {
	recs   map[string]salary.MonthlySalary
	nextID int
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{recs: make(map[string]salary.MonthlySalary)}
}

func (f *fakeSalaryRepo) GetOrCreate(_ context.Context, employeeID string, year, month int, basicSalary decimal.Decimal) (salary.MonthlySalary, error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && rec.Year == year && rec.Month == month {
			return rec, nil
		}
	}
	f.nextID++
	rec := salary.MonthlySalary{
		ID:           fmt.Sprintf("sal-%d", f.nextID),
		EmployeeID:   employeeID,
		Year:         year,
		Month:        month,
		BasicSalary:  basicSalary,
		TotalPenalty: decimal.Zero,
		TotalBonus:   decimal.Zero,
		NetSalary:    decimal.Zero,
	}
	f.recs[rec.ID] = rec
	return rec, nil
}

func (f *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.MonthlySalary, error) {
	rec, ok := f.recs[id]
	if !ok {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFound
	}
	return rec, nil
}

// ReplaceDerived mirrors the SQL update: derived columns only, the manual
// and payment columns keep their stored values.
func (f *fakeSalaryRepo) ReplaceDerived(_ context.Context, rec salary.MonthlySalary) (salary.MonthlySalary, error) {
	stored, ok := f.recs[rec.ID]
	if !ok {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFound
	}
	stored.BasicSalary = rec.BasicSalary
	stored.TotalPenalty = rec.TotalPenalty
	stored.NetSalary = rec.NetSalary
	stored.WorkDays = rec.WorkDays
	stored.PresentDays = rec.PresentDays
	stored.LateDays = rec.LateDays
	stored.AbsentDays = rec.AbsentDays
	stored.DayOffDays = rec.DayOffDays
	f.recs[rec.ID] = stored
	return stored, nil
}

func (f *fakeSalaryRepo) UpdateBonus(_ context.Context, id string, bonus decimal.Decimal, notes *string, netSalary decimal.Decimal) (salary.MonthlySalary, error) {
	rec, ok := f.recs[id]
	if !ok {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFound
	}
	rec.TotalBonus = bonus
	if notes != nil {
		rec.Notes = *notes
	}
	rec.NetSalary = netSalary
	f.recs[id] = rec
	return rec, nil
}

func (f *fakeSalaryRepo) MarkPaid(_ context.Context, id string, paidDate time.Time) (salary.MonthlySalary, error) {
	rec, ok := f.recs[id]
	if !ok {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFound
	}
	rec.IsPaid = true
	rec.PaidDate = &paidDate
	f.recs[id] = rec
	return rec, nil
}

type fakeAttendanceRepo struct {
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.rows = append(f.rows, att)
	return att, nil
}

func (f *fakeAttendanceRepo) Exists(_ context.Context, employeeID string, date time.Time, direction attendance.Direction) (bool, error) {
	for _, r := range f.rows {
		if r.EmployeeID == employeeID && r.Date.Equal(date) && r.Direction == direction {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time, direction attendance.Direction) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.rows {
		if r.EmployeeID == employeeID && r.Direction == direction && !r.Date.Before(from) && r.Date.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
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

func (f *fakeAttendanceRepo) UpdateClassification(_ context.Context, id string, status attendance.Status, lateMinutes int, penalty decimal.Decimal) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows[i].Status = status
			f.rows[i].LateMinutes = lateMinutes
			f.rows[i].PenaltyAmount = penalty
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
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

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = active
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

const testEmployeeID = "9f2b54c0-52d3-4f7a-8dbe-6f0a1e3c7d15"

// June 2024 starts on a Saturday, so Monday through Friday gives exactly
// 20 work days.
func testEmployee() employee.Employee {
	return employee.Employee{
		ID:        testEmployeeID,
		FirstName: "Bekzod",
		LastName:  "Tursunov",
		Position:  "Engineer",
		WorkDays: []schedule.Weekday{
			schedule.Monday, schedule.Tuesday, schedule.Wednesday,
			schedule.Thursday, schedule.Friday,
		},
		WorkSchedule:         schedule.WeekSchedule{},
		MonthlySalary:        decimal.NewFromInt(5000000),
		LatePenaltyPerMinute: decimal.NewFromInt(1000),
		AllowedLateMinutes:   10,
		IsActive:             true,
	}
}

func newTestService(emp employee.Employee) (*SalaryServiceImpl, *fakeSalaryRepo, *fakeAttendanceRepo) {
	salRepo := newFakeSalaryRepo()
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}}
	svc := &SalaryServiceImpl{
		salaryRepo:     salRepo,
		attendanceRepo: attRepo,
		employeeRepo:   empRepo,
		loc:            time.UTC,
		now:            func() time.Time { return time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) },
	}
	return svc, salRepo, attRepo
}

func checkInRow(day int, status attendance.Status, penalty int64) attendance.Attendance {
	date := time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
	return attendance.Attendance{
		ID:            fmt.Sprintf("att-%d", day),
		EmployeeID:    testEmployeeID,
		Date:          date,
		ClockTime:     date.Add(9 * time.Hour),
		Direction:     attendance.DirectionIn,
		Status:        status,
		PenaltyAmount: decimal.NewFromInt(penalty),
	}
}

func seedPresent(attRepo *fakeAttendanceRepo, days ...int) {
	for _, day := range days {
		attRepo.rows = append(attRepo.rows, checkInRow(day, attendance.StatusOntime, 0))
	}
}

func computeJune(t *testing.T, svc *SalaryServiceImpl) salary.MonthlySalaryResponse {
	t.Helper()
	resp, err := svc.ComputeMonth(context.Background(), salary.ComputeMonthRequest{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      6,
	})
	require.NoError(t, err)
	return resp
}

func TestComputeMonth_AbsenceDeduction(t *testing.T) {
	svc, _, attRepo := newTestService(testEmployee())
	// 15 of the 20 work days attended.
	seedPresent(attRepo, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 17, 18, 19, 20, 21)

	resp := computeJune(t, svc)

	assert.Equal(t, 20, resp.WorkDays)
	assert.Equal(t, 15, resp.PresentDays)
	assert.Equal(t, 5, resp.AbsentDays)
	// dailySalary 250000, absence penalty 1250000.
	assert.True(t, resp.TotalPenalty.Equal(decimal.NewFromInt(1250000)),
		"total penalty = %s", resp.TotalPenalty)
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(3750000)),
		"net salary = %s", resp.NetSalary)
}

func TestComputeMonth_Idempotent(t *testing.T) {
	svc, salRepo, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3, 4, 5)

	first := computeJune(t, svc)
	second := computeJune(t, svc)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.Equal(t, first.AbsentDays, second.AbsentDays)
	assert.Len(t, salRepo.recs, 1)
}

func TestComputeMonth_PresentPlusAbsentEqualsWorkDays(t *testing.T) {
	svc, _, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3, 4, 10, 17, 24, 25, 26)

	resp := computeJune(t, svc)

	assert.Equal(t, resp.WorkDays, resp.PresentDays+resp.AbsentDays)
}

func TestComputeMonth_DayOffRowsDoNotCountAsPresent(t *testing.T) {
	svc, _, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3)
	// June 8 2024 is a Saturday.
	attRepo.rows = append(attRepo.rows, checkInRow(8, attendance.StatusDayOff, 0))

	resp := computeJune(t, svc)

	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 1, resp.DayOffDays)
	assert.Equal(t, 19, resp.AbsentDays)
}

func TestComputeMonth_LatePenaltiesAccumulate(t *testing.T) {
	svc, _, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 17, 18, 19, 20, 21, 24, 25, 26)
	attRepo.rows = append(attRepo.rows,
		checkInRow(27, attendance.StatusLate, 7000),
		checkInRow(28, attendance.StatusLate, 12000),
	)

	resp := computeJune(t, svc)

	assert.Equal(t, 20, resp.PresentDays)
	assert.Equal(t, 0, resp.AbsentDays)
	assert.Equal(t, 2, resp.LateDays)
	assert.True(t, resp.TotalPenalty.Equal(decimal.NewFromInt(19000)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(4981000)))
}

func TestComputeMonth_NetSalaryFloorsAtZero(t *testing.T) {
	emp := testEmployee()
	emp.MonthlySalary = decimal.NewFromInt(100000)
	svc, _, attRepo := newTestService(emp)
	// One late arrival with a penalty above the whole salary.
	attRepo.rows = append(attRepo.rows, checkInRow(3, attendance.StatusLate, 90000))

	resp := computeJune(t, svc)

	assert.True(t, resp.NetSalary.IsZero(), "net salary = %s", resp.NetSalary)
}

func TestComputeMonth_NoWorkDaysConfigured(t *testing.T) {
	emp := testEmployee()
	emp.WorkDays = nil
	svc, _, _ := newTestService(emp)

	resp := computeJune(t, svc)

	assert.Equal(t, 0, resp.WorkDays)
	assert.Equal(t, 0, resp.AbsentDays)
	assert.True(t, resp.TotalPenalty.IsZero())
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5000000)))
}

func TestComputeMonth_BonusSurvivesRecompute(t *testing.T) {
	svc, _, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 17, 18, 19, 20, 21, 24, 25, 26, 27, 28)

	first := computeJune(t, svc)

	notes := "quarterly bonus"
	_, err := svc.UpdateBonus(context.Background(), salary.UpdateBonusRequest{
		ID:         first.ID,
		TotalBonus: decimal.NewFromInt(300000),
		Notes:      &notes,
	})
	require.NoError(t, err)

	resp := computeJune(t, svc)

	assert.True(t, resp.TotalBonus.Equal(decimal.NewFromInt(300000)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5300000)))
	assert.Equal(t, "quarterly bonus", resp.Notes)
}

func TestUpdateBonus_RejectsNegative(t *testing.T) {
	svc, _, _ := newTestService(testEmployee())
	first := computeJune(t, svc)

	_, err := svc.UpdateBonus(context.Background(), salary.UpdateBonusRequest{
		ID:         first.ID,
		TotalBonus: decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestMarkPaid(t *testing.T) {
	svc, salRepo, _ := newTestService(testEmployee())
	first := computeJune(t, svc)

	resp, err := svc.MarkPaid(context.Background(), first.ID)
	require.NoError(t, err)

	assert.True(t, resp.IsPaid)
	require.NotNil(t, resp.PaidDate)
	assert.Equal(t, "2024-07-01", *resp.PaidDate)

	// Recompute still works after payment and keeps the paid flag.
	resp2 := computeJune(t, svc)
	assert.True(t, resp2.IsPaid)
	_ = salRepo
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc, _, _ := newTestService(testEmployee())

	_, err := svc.MarkPaid(context.Background(), "missing")
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestReport_TotalsAndLazyCompute(t *testing.T) {
	svc, salRepo, attRepo := newTestService(testEmployee())
	seedPresent(attRepo, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 17, 18, 19, 20, 21)

	resp, err := svc.Report(context.Background(), salary.ReportRequest{Year: 2024, Month: 6})
	require.NoError(t, err)

	require.Len(t, resp.Salaries, 1)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 6, resp.Month)
	assert.Equal(t, 20, resp.Totals.TotalWorkDays)
	assert.Equal(t, 15, resp.Totals.TotalPresentDays)
	assert.Equal(t, 5, resp.Totals.TotalAbsentDays)
	assert.True(t, resp.Totals.TotalNetSalary.Equal(decimal.NewFromInt(3750000)))
	assert.Equal(t, 1, resp.Totals.UnpaidCount)
	assert.Len(t, salRepo.recs, 1)
}

func TestReport_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestService(testEmployee())

	_, err := svc.Report(context.Background(), salary.ReportRequest{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, salary.ErrInvalidPeriod)
}

func TestReport_SkipsInactiveEmployees(t *testing.T) {
	emp := testEmployee()
	emp.IsActive = false
	svc, _, _ := newTestService(emp)

	resp, err := svc.Report(context.Background(), salary.ReportRequest{Year: 2024, Month: 6})
	require.NoError(t, err)
	assert.Empty(t, resp.Salaries)
}
