package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Position             string            `json:"position"`
	Department           string            `json:"department"`
	Phone                *string           `json:"phone,omitempty"`
	Email                *string           `json:"email,omitempty"`
	PhotoURL             *string           `json:"photo_url,omitempty"`
	WorkDays             []string          `json:"work_days"`
	WorkSchedule         map[string]DayTimesPayload `json:"work_schedule"`
	MonthlySalary        decimal.Decimal   `json:"monthly_salary"`
	LatePenaltyPerMinute *decimal.Decimal  `json:"late_penalty_per_minute,omitempty"`
	AllowedLateMinutes   *int              `json:"allowed_late_minutes,omitempty"`
	DailyWorkHours       *decimal.Decimal  `json:"daily_work_hours,omitempty"`
}

// DayTimesPayload is the wire form of one weekday's schedule window.
type DayTimesPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.LatePenaltyPerMinute != nil && r.LatePenaltyPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_penalty_per_minute", Message: "must be non-negative"})
	}
	if r.AllowedLateMinutes != nil && *r.AllowedLateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowed_late_minutes", Message: "must be non-negative"})
	}
	if r.DailyWorkHours != nil && (r.DailyWorkHours.IsNegative() || r.DailyWorkHours.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{Field: "daily_work_hours", Message: "must be between 0 and 24"})
	}
	for _, day := range r.WorkDays {
		if !schedule.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "unknown weekday: " + day})
		}
	}
	for day, times := range r.WorkSchedule {
		if !schedule.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_schedule", Message: "unknown weekday: " + day})
			continue
		}
		if !validator.IsValidClockTime(times.Start) || !validator.IsValidClockTime(times.End) {
			errs = append(errs, validator.ValidationError{Field: "work_schedule." + day, Message: "times must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                   string
	FirstName            *string           `json:"first_name,omitempty"`
	LastName             *string           `json:"last_name,omitempty"`
	Position             *string           `json:"position,omitempty"`
	Department           *string           `json:"department,omitempty"`
	Phone                *string           `json:"phone,omitempty"`
	Email                *string           `json:"email,omitempty"`
	PhotoURL             *string           `json:"photo_url,omitempty"`
	WorkDays             []string          `json:"work_days,omitempty"`
	WorkSchedule         map[string]DayTimesPayload `json:"work_schedule,omitempty"`
	MonthlySalary        *decimal.Decimal  `json:"monthly_salary,omitempty"`
	LatePenaltyPerMinute *decimal.Decimal  `json:"late_penalty_per_minute,omitempty"`
	AllowedLateMinutes   *int              `json:"allowed_late_minutes,omitempty"`
	DailyWorkHours       *decimal.Decimal  `json:"daily_work_hours,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.LatePenaltyPerMinute != nil && r.LatePenaltyPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_penalty_per_minute", Message: "must be non-negative"})
	}
	if r.AllowedLateMinutes != nil && *r.AllowedLateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "allowed_late_minutes", Message: "must be non-negative"})
	}
	for _, day := range r.WorkDays {
		if !schedule.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "unknown weekday: " + day})
		}
	}
	for day, times := range r.WorkSchedule {
		if !schedule.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_schedule", Message: "unknown weekday: " + day})
			continue
		}
		if !validator.IsValidClockTime(times.Start) || !validator.IsValidClockTime(times.End) {
			errs = append(errs, validator.ValidationError{Field: "work_schedule." + day, Message: "times must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search     string
	Department string
	Active     *bool
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID                   string                     `json:"id"`
	FirstName            string                     `json:"first_name"`
	LastName             string                     `json:"last_name"`
	FullName             string                     `json:"full_name"`
	Position             string                     `json:"position"`
	Department           string                     `json:"department"`
	Phone                *string                    `json:"phone,omitempty"`
	Email                *string                    `json:"email,omitempty"`
	PhotoURL             *string                    `json:"photo_url,omitempty"`
	WorkDays             []string                   `json:"work_days"`
	WorkSchedule         map[string]DayTimesPayload `json:"work_schedule"`
	MonthlySalary        decimal.Decimal            `json:"monthly_salary"`
	LatePenaltyPerMinute decimal.Decimal            `json:"late_penalty_per_minute"`
	AllowedLateMinutes   int                        `json:"allowed_late_minutes"`
	DailyWorkHours       decimal.Decimal            `json:"daily_work_hours"`
	IsActive             bool                       `json:"is_active"`
	CreatedAt            string                     `json:"created_at"`
	UpdatedAt            string                     `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
