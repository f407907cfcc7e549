package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// RecordCheckIn classifies and persists a check-in at the current
	// server time. A check-in on a non-work day is recorded as day_off,
	// not rejected.
	RecordCheckIn(ctx context.Context, employeeID string) (MarkResponse, error)

	// RecordCheckOut persists a check-out at the current server time.
	// Fails with ErrMissingCheckIn when no check-in exists for today.
	RecordCheckOut(ctx context.Context, employeeID string) (MarkResponse, error)

	// Reclassify re-runs check-in classification over a date range and
	// overwrites stored status, late minutes and penalty. Used after a
	// retroactive schedule or penalty-policy change.
	Reclassify(ctx context.Context, req ReclassifyRequest) (ReclassifyResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/HR)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
