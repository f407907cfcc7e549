package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkRequest is what the capture collaborator posts: who and which direction.
// Date and clock time always come from the server wall clock.
type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a UUID",
		})
	}
	if r.Type != string(DirectionIn) && r.Type != string(DirectionOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	IsWorkDay     bool            `json:"is_work_day"`
	LateMinutes   int             `json:"late_minutes"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	Message       string          `json:"message"`
}

type ReclassifyRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ReclassifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a UUID"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReclassifyResponse struct {
	EmployeeID string `json:"employee_id"`
	Updated    int    `json:"updated"`
}

type AttendanceFilter struct {
	EmployeeID string
	Status     string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	EmployeePosition *string         `json:"employee_position,omitempty"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	LateMinutes      int             `json:"late_minutes"`
	PenaltyAmount    decimal.Decimal `json:"penalty_amount"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        string          `json:"created_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
