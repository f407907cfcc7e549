package response

import (
	"errors"
	"net/http"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/auth"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/salary"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminOrHRRequired):
		Forbidden(w, "Admin or HR access required")
	case errors.Is(err, auth.ErrManagementRequired):
		Forbidden(w, "Management access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateEvent):
		Conflict(w, "Attendance already recorded for this date and direction")
	case errors.Is(err, attendance.ErrMissingCheckIn):
		BadRequest(w, "Check-out requires a check-in on the same date", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDirection):
		BadRequest(w, "Attendance type must be 'in' or 'out'", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "start_date must not be after end_date", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid year/month period", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, schedule.ErrInvalidClockTime):
		BadRequest(w, "Clock times must be in HH:MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
