package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	now            func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// Today implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Today(ctx context.Context) (dashboard.TodayResponse, error) {
	nowLocal := s.now().In(s.loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	checkIns, err := s.attendanceRepo.ListByDate(ctx, date, attendance.DirectionIn)
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to list today's check-ins: %w", err)
	}
	checkOuts, err := s.attendanceRepo.ListByDate(ctx, date, attendance.DirectionOut)
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to list today's check-outs: %w", err)
	}

	activeCount, err := s.dashboardRepo.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to count active employees: %w", err)
	}
	presentCount, err := s.dashboardRepo.CountCheckedInOn(ctx, date)
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to count checked-in employees: %w", err)
	}
	monthNet, err := s.dashboardRepo.SumNetSalary(ctx, date.Year(), int(date.Month()))
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to sum month net salary: %w", err)
	}

	resp := dashboard.TodayResponse{
		Date:           date.Format("2006-01-02"),
		CheckIns:       make([]dashboard.TodayEvent, 0, len(checkIns)),
		CheckOuts:      make([]dashboard.TodayEvent, 0, len(checkOuts)),
		TotalCheckIns:  len(checkIns),
		TotalCheckOuts: len(checkOuts),
		PresentCount:   presentCount,
		ActiveCount:    activeCount,
		MonthNetSalary: monthNet,
	}

	checkedIn := make(map[string]struct{}, len(checkIns))
	for _, att := range checkIns {
		checkedIn[att.EmployeeID] = struct{}{}
		switch att.Status {
		case attendance.StatusLate:
			resp.LateCount++
		case attendance.StatusDayOff:
			resp.DayOffCount++
		}
		resp.CheckIns = append(resp.CheckIns, todayEvent(att))
	}
	for _, att := range checkOuts {
		resp.CheckOuts = append(resp.CheckOuts, todayEvent(att))
	}

	// Absence is derived: active employees scheduled to work today who
	// have no check-in yet.
	active, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	for _, emp := range active {
		day, err := emp.ScheduleFor(date)
		if err != nil {
			return dashboard.TodayResponse{}, err
		}
		if !day.IsWorkDay {
			continue
		}
		if _, ok := checkedIn[emp.ID]; !ok {
			resp.AbsentCount++
		}
	}

	return resp, nil
}

func todayEvent(att attendance.Attendance) dashboard.TodayEvent {
	var name string
	if att.EmployeeName != nil {
		name = *att.EmployeeName
	}
	return dashboard.TodayEvent{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  name,
		Time:          att.ClockTime.Format("15:04"),
		Status:        string(att.Status),
		LateMinutes:   att.LateMinutes,
		PenaltyAmount: att.PenaltyAmount,
	}
}
