package employee

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	workDays := toWeekdays(req.WorkDays)
	week, err := toWeekSchedule(req.WorkSchedule)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Position:       req.Position,
		Department:     req.Department,
		Phone:          req.Phone,
		Email:          req.Email,
		PhotoURL:       req.PhotoURL,
		WorkDays:       workDays,
		WorkSchedule:   week,
		MonthlySalary:  req.MonthlySalary,
		DailyWorkHours: decimal.NewFromInt(8),
		IsActive:       true,
	}
	emp.LatePenaltyPerMinute = decimal.Zero
	if req.LatePenaltyPerMinute != nil {
		emp.LatePenaltyPerMinute = *req.LatePenaltyPerMinute
	}
	if req.AllowedLateMinutes != nil {
		emp.AllowedLateMinutes = *req.AllowedLateMinutes
	}
	if req.DailyWorkHours != nil {
		emp.DailyWorkHours = *req.DailyWorkHours
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = req.PhotoURL
	}
	if req.WorkDays != nil {
		emp.WorkDays = toWeekdays(req.WorkDays)
	}
	if req.WorkSchedule != nil {
		week, err := toWeekSchedule(req.WorkSchedule)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.WorkSchedule = week
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = *req.MonthlySalary
	}
	if req.LatePenaltyPerMinute != nil {
		emp.LatePenaltyPerMinute = *req.LatePenaltyPerMinute
	}
	if req.AllowedLateMinutes != nil {
		emp.AllowedLateMinutes = *req.AllowedLateMinutes
	}
	if req.DailyWorkHours != nil {
		emp.DailyWorkHours = *req.DailyWorkHours
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// SetEmployeeActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetEmployeeActive(ctx context.Context, id string, active bool) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.IsActive == active {
		if active {
			return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyActive
		}
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.SetActive(ctx, id, active); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to set employee active flag: %w", err)
	}

	emp.IsActive = active
	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toWeekdays(days []string) []schedule.Weekday {
	out := make([]schedule.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, schedule.Weekday(d))
	}
	return out
}

func toWeekSchedule(payload map[string]employee.DayTimesPayload) (schedule.WeekSchedule, error) {
	week := make(schedule.WeekSchedule, len(payload))
	for day, times := range payload {
		start, err := schedule.ParseTimeOfDay(times.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(times.End)
		if err != nil {
			return nil, err
		}
		week[schedule.Weekday(day)] = schedule.DayTimes{Start: start, End: end}
	}
	return week, nil
}

// mapEmployeeToResponse converts an Employee entity to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	workDays := make([]string, 0, len(emp.WorkDays))
	for _, d := range emp.WorkDays {
		workDays = append(workDays, string(d))
	}

	week := make(map[string]employee.DayTimesPayload, len(emp.WorkSchedule))
	for day, times := range emp.WorkSchedule {
		week[string(day)] = employee.DayTimesPayload{
			Start: times.Start.String(),
			End:   times.End.String(),
		}
	}

	return employee.EmployeeResponse{
		ID:                   emp.ID,
		FirstName:            emp.FirstName,
		LastName:             emp.LastName,
		FullName:             emp.FullName(),
		Position:             emp.Position,
		Department:           emp.Department,
		Phone:                emp.Phone,
		Email:                emp.Email,
		PhotoURL:             emp.PhotoURL,
		WorkDays:             workDays,
		WorkSchedule:         week,
		MonthlySalary:        emp.MonthlySalary,
		LatePenaltyPerMinute: emp.LatePenaltyPerMinute,
		AllowedLateMinutes:   emp.AllowedLateMinutes,
		DailyWorkHours:       emp.DailyWorkHours,
		IsActive:             emp.IsActive,
		CreatedAt:            emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
