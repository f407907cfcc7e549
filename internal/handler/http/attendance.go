package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staffly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reclassify(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler - the capture device posts here
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode mark request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var result attendance.MarkResponse
	var err error
	if req.Type == string(attendance.DirectionIn) {
		result, err = h.attendanceService.RecordCheckIn(r.Context(), req.EmployeeID)
	} else {
		result, err = h.attendanceService.RecordCheckOut(r.Context(), req.EmployeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// List implements AttendanceHandler
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Page:       1,
		Limit:      10,
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			filter.Page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Reclassify implements AttendanceHandler
func (h *attendanceHandlerImpl) Reclassify(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReclassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode reclassify request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Reclassify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reclassified", result)
}
