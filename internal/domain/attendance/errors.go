package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrDuplicateEvent = errors.New("attendance already recorded for this employee, date and direction")
	ErrMissingCheckIn = errors.New("no check-in recorded for this date yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDirection   = errors.New("attendance type must be 'in' or 'out'")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)
