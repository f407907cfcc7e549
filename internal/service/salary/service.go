package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salaryRepo     salary.SalaryRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	now            func() time.Time
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// ComputeMonth implements salary.SalaryService.
func (s *SalaryServiceImpl) ComputeMonth(ctx context.Context, req salary.ComputeMonthRequest) (salary.MonthlySalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	rec, err := s.recompute(ctx, emp, req.Year, req.Month)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	return mapSalaryToResponse(rec, emp.FullName()), nil
}

// recompute rebuilds one employee's record for the period from attendance
// data and persists the derived fields in a single replace.
func (s *SalaryServiceImpl) recompute(ctx context.Context, emp employee.Employee, year, month int) (salary.MonthlySalary, error) {
	rec, err := s.salaryRepo.GetOrCreate(ctx, emp.ID, year, month, emp.MonthlySalary)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to get or create salary record: %w", err)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	next := first.AddDate(0, 1, 0)

	// The schedule, not the attendance table, decides which dates count
	// as work days.
	workDays := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		day, err := emp.ScheduleFor(d)
		if err != nil {
			return salary.MonthlySalary{}, err
		}
		if day.IsWorkDay {
			workDays++
		}
	}

	rows, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, first, next, attendance.DirectionIn)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to list attendance for salary: %w", err)
	}

	// Rows are partitioned by the schedule's current classification of
	// their date, so a schedule edit moves old rows between the present
	// and day-off buckets on the next recompute.
	presentDates := make(map[string]struct{})
	dayOffDates := make(map[string]struct{})
	lateDates := make(map[string]struct{})
	latePenalty := decimal.Zero
	for _, row := range rows {
		day, err := emp.ScheduleFor(row.Date)
		if err != nil {
			return salary.MonthlySalary{}, err
		}
		key := row.Date.Format("2006-01-02")
		if !day.IsWorkDay {
			dayOffDates[key] = struct{}{}
			continue
		}
		presentDates[key] = struct{}{}
		if row.Status == attendance.StatusLate {
			lateDates[key] = struct{}{}
		}
		latePenalty = latePenalty.Add(row.PenaltyAmount)
	}

	presentDays := len(presentDates)
	absentDays := workDays - presentDays
	if absentDays < 0 {
		absentDays = 0
	}

	basic := emp.MonthlySalary
	dailySalary := decimal.Zero
	if workDays > 0 {
		dailySalary = basic.Div(decimal.NewFromInt(int64(workDays)))
	}
	absencePenalty := decimal.NewFromInt(int64(absentDays)).Mul(dailySalary)
	totalPenalty := latePenalty.Add(absencePenalty)

	net := basic.Sub(totalPenalty).Add(rec.TotalBonus)
	if net.IsNegative() {
		net = decimal.Zero
	}

	rec.BasicSalary = basic
	rec.TotalPenalty = totalPenalty
	rec.NetSalary = net
	rec.WorkDays = workDays
	rec.PresentDays = presentDays
	rec.LateDays = len(lateDates)
	rec.AbsentDays = absentDays
	rec.DayOffDays = len(dayOffDates)

	updated, err := s.salaryRepo.ReplaceDerived(ctx, rec)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to persist salary record: %w", err)
	}
	return updated, nil
}

// Report implements salary.SalaryService.
func (s *SalaryServiceImpl) Report(ctx context.Context, req salary.ReportRequest) (salary.ReportResponse, error) {
	if req.Year == 0 || req.Month == 0 {
		nowLocal := s.now().In(s.loc)
		if req.Year == 0 {
			req.Year = nowLocal.Year()
		}
		if req.Month == 0 {
			req.Month = int(nowLocal.Month())
		}
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return salary.ReportResponse{}, salary.ErrInvalidPeriod
	}

	var employees []employee.Employee
	if req.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return salary.ReportResponse{}, err
		}
		employees = []employee.Employee{emp}
	} else {
		var err error
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return salary.ReportResponse{}, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	resp := salary.ReportResponse{
		Year:  req.Year,
		Month: req.Month,
		Totals: salary.ReportTotals{
			TotalNetSalary: decimal.Zero,
			TotalPenalty:   decimal.Zero,
		},
	}
	resp.Salaries = make([]salary.MonthlySalaryResponse, 0, len(employees))

	for _, emp := range employees {
		rec, err := s.salaryRepo.GetOrCreate(ctx, emp.ID, req.Year, req.Month, emp.MonthlySalary)
		if err != nil {
			return salary.ReportResponse{}, fmt.Errorf("failed to get or create salary record: %w", err)
		}

		// A record that never went through a compute pass has no
		// derived counts yet. Recomputing is idempotent, so force and
		// the lazy triggers share one path.
		if req.Force || rec.WorkDays == 0 || rec.PresentDays == 0 {
			rec, err = s.recompute(ctx, emp, req.Year, req.Month)
			if err != nil {
				return salary.ReportResponse{}, err
			}
		}

		resp.Salaries = append(resp.Salaries, mapSalaryToResponse(rec, emp.FullName()))

		resp.Totals.TotalNetSalary = resp.Totals.TotalNetSalary.Add(rec.NetSalary)
		resp.Totals.TotalPenalty = resp.Totals.TotalPenalty.Add(rec.TotalPenalty)
		resp.Totals.TotalWorkDays += rec.WorkDays
		resp.Totals.TotalPresentDays += rec.PresentDays
		resp.Totals.TotalAbsentDays += rec.AbsentDays
		resp.Totals.TotalLateDays += rec.LateDays
		resp.Totals.TotalDayOffDays += rec.DayOffDays
		if rec.IsPaid {
			resp.Totals.PaidCount++
		} else {
			resp.Totals.UnpaidCount++
		}
	}

	return resp, nil
}

// MarkPaid implements salary.SalaryService.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, salaryID string) (salary.MonthlySalaryResponse, error) {
	nowLocal := s.now().In(s.loc)
	paidDate := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	rec, err := s.salaryRepo.MarkPaid(ctx, salaryID, paidDate)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	return mapSalaryToResponse(rec, recEmployeeName(rec)), nil
}

// UpdateBonus implements salary.SalaryService.
func (s *SalaryServiceImpl) UpdateBonus(ctx context.Context, req salary.UpdateBonusRequest) (salary.MonthlySalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	rec, err := s.salaryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return salary.MonthlySalaryResponse{}, err
	}

	net := rec.BasicSalary.Sub(rec.TotalPenalty).Add(req.TotalBonus)
	if net.IsNegative() {
		net = decimal.Zero
	}

	updated, err := s.salaryRepo.UpdateBonus(ctx, req.ID, req.TotalBonus, req.Notes, net)
	if err != nil {
		return salary.MonthlySalaryResponse{}, fmt.Errorf("failed to update bonus: %w", err)
	}

	return mapSalaryToResponse(updated, recEmployeeName(updated)), nil
}

func recEmployeeName(rec salary.MonthlySalary) string {
	if rec.EmployeeName != nil {
		return *rec.EmployeeName
	}
	return ""
}

// mapSalaryToResponse converts a MonthlySalary entity to MonthlySalaryResponse
func mapSalaryToResponse(rec salary.MonthlySalary, employeeName string) salary.MonthlySalaryResponse {
	var paidDate *string
	if rec.PaidDate != nil {
		formatted := rec.PaidDate.Format("2006-01-02")
		paidDate = &formatted
	}

	return salary.MonthlySalaryResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: employeeName,
		Year:         rec.Year,
		Month:        rec.Month,
		BasicSalary:  rec.BasicSalary,
		TotalPenalty: rec.TotalPenalty,
		TotalBonus:   rec.TotalBonus,
		NetSalary:    rec.NetSalary,
		WorkDays:     rec.WorkDays,
		PresentDays:  rec.PresentDays,
		LateDays:     rec.LateDays,
		AbsentDays:   rec.AbsentDays,
		DayOffDays:   rec.DayOffDays,
		Notes:        rec.Notes,
		IsPaid:       rec.IsPaid,
		PaidDate:     paidDate,
		UpdatedAt:    rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
