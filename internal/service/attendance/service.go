package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
	"github.com/staffly-hq/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	now            func() time.Time
	inTx           func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

// classification is the derived outcome of one check-in.
type classification struct {
	status      attendance.Status
	lateMinutes int
	penalty     decimal.Decimal
}

// classifyCheckIn applies the lateness rules to one arrival. Pure; date and
// clockTime carry the server wall clock in loc.
func classifyCheckIn(emp employee.Employee, date, clockTime time.Time, loc *time.Location) (classification, error) {
	day, err := emp.ScheduleFor(date)
	if err != nil {
		return classification{}, err
	}

	// Arriving on an off day is recorded, never rejected.
	if !day.IsWorkDay {
		return classification{status: attendance.StatusDayOff, penalty: decimal.Zero}, nil
	}

	scheduled := day.Start.At(date, loc)
	switch {
	case clockTime.After(scheduled):
		rawLate := int(clockTime.Sub(scheduled) / time.Minute)
		effective := rawLate - emp.AllowedLateMinutes
		if effective > 0 {
			penalty := decimal.NewFromInt(int64(effective)).Mul(emp.LatePenaltyPerMinute)
			return classification{status: attendance.StatusLate, lateMinutes: effective, penalty: penalty}, nil
		}
		// The grace period absorbed the lateness.
		return classification{status: attendance.StatusOntime, penalty: decimal.Zero}, nil
	case clockTime.Before(scheduled):
		return classification{status: attendance.StatusEarly, penalty: decimal.Zero}, nil
	default:
		return classification{status: attendance.StatusOntime, penalty: decimal.Zero}, nil
	}
}

// RecordCheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordCheckIn(ctx context.Context, employeeID string) (attendance.MarkResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MarkResponse{}, err
	}
	if !emp.IsActive {
		return attendance.MarkResponse{}, employee.ErrEmployeeInactive
	}

	nowLocal := s.now().In(s.loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	exists, err := s.attendanceRepo.Exists(ctx, emp.ID, date, attendance.DirectionIn)
	if err != nil {
		return attendance.MarkResponse{}, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if exists {
		return attendance.MarkResponse{}, attendance.ErrDuplicateEvent
	}

	cls, err := classifyCheckIn(emp, date, nowLocal, s.loc)
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          date,
		ClockTime:     nowLocal,
		Direction:     attendance.DirectionIn,
		Status:        cls.status,
		LateMinutes:   cls.lateMinutes,
		PenaltyAmount: cls.penalty,
	})
	if err != nil {
		// The unique index is the authority; a concurrent winner makes
		// this insert lose with ErrDuplicateEvent.
		return attendance.MarkResponse{}, err
	}

	var message string
	switch cls.status {
	case attendance.StatusDayOff:
		message = fmt.Sprintf("%s checked in (day off, not counted as a work day)", emp.FullName())
	case attendance.StatusLate:
		message = fmt.Sprintf("%s checked in %d minutes late, penalty %s", emp.FullName(), cls.lateMinutes, cls.penalty.StringFixed(0))
	default:
		message = fmt.Sprintf("%s checked in", emp.FullName())
	}

	return markResponse(created, emp, message, cls.status != attendance.StatusDayOff), nil
}

// RecordCheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordCheckOut(ctx context.Context, employeeID string) (attendance.MarkResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MarkResponse{}, err
	}
	if !emp.IsActive {
		return attendance.MarkResponse{}, employee.ErrEmployeeInactive
	}

	nowLocal := s.now().In(s.loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	checkedIn, err := s.attendanceRepo.Exists(ctx, emp.ID, date, attendance.DirectionIn)
	if err != nil {
		return attendance.MarkResponse{}, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if !checkedIn {
		return attendance.MarkResponse{}, attendance.ErrMissingCheckIn
	}

	checkedOut, err := s.attendanceRepo.Exists(ctx, emp.ID, date, attendance.DirectionOut)
	if err != nil {
		return attendance.MarkResponse{}, fmt.Errorf("failed to check existing check-out: %w", err)
	}
	if checkedOut {
		return attendance.MarkResponse{}, attendance.ErrDuplicateEvent
	}

	// No lateness is assessed on departure.
	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          date,
		ClockTime:     nowLocal,
		Direction:     attendance.DirectionOut,
		Status:        attendance.StatusOntime,
		PenaltyAmount: decimal.Zero,
	})
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	message := fmt.Sprintf("%s checked out", emp.FullName())
	return markResponse(created, emp, message, true), nil
}

// Reclassify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Reclassify(ctx context.Context, req attendance.ReclassifyRequest) (attendance.ReclassifyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReclassifyResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ReclassifyResponse{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.loc)
	if start.After(end) {
		return attendance.ReclassifyResponse{}, attendance.ErrInvalidDateRange
	}

	// One transaction so a range is never left half reclassified.
	updated := 0
	err = s.inTx(ctx, func(txCtx context.Context) error {
		rows, err := s.attendanceRepo.ListByEmployeeAndRange(txCtx, emp.ID, start, end.AddDate(0, 0, 1), attendance.DirectionIn)
		if err != nil {
			return fmt.Errorf("failed to list attendance for reclassification: %w", err)
		}

		for _, row := range rows {
			cls, err := classifyCheckIn(emp, row.Date, row.ClockTime, s.loc)
			if err != nil {
				return err
			}
			if cls.status == row.Status && cls.lateMinutes == row.LateMinutes && cls.penalty.Equal(row.PenaltyAmount) {
				continue
			}
			if err := s.attendanceRepo.UpdateClassification(txCtx, row.ID, cls.status, cls.lateMinutes, cls.penalty); err != nil {
				return fmt.Errorf("failed to update classification for %s: %w", row.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return attendance.ReclassifyResponse{}, err
	}

	return attendance.ReclassifyResponse{EmployeeID: emp.ID, Updated: updated}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	rows, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, att := range rows {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

func markResponse(att attendance.Attendance, emp employee.Employee, message string, isWorkDay bool) attendance.MarkResponse {
	return attendance.MarkResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  emp.FullName(),
		Date:          att.Date.Format("2006-01-02"),
		Time:          att.ClockTime.Format("15:04"),
		Type:          string(att.Direction),
		Status:        string(att.Status),
		IsWorkDay:     isWorkDay,
		LateMinutes:   att.LateMinutes,
		PenaltyAmount: att.PenaltyAmount,
		Message:       message,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     employeeName,
		EmployeePosition: att.EmployeePosition,
		Date:             att.Date.Format("2006-01-02"),
		Time:             att.ClockTime.Format("15:04"),
		Type:             string(att.Direction),
		Status:           string(att.Status),
		LateMinutes:      att.LateMinutes,
		PenaltyAmount:    att.PenaltyAmount,
		Notes:            att.Notes,
		CreatedAt:        att.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
