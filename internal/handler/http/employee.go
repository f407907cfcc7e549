package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/employee"
	"github.com/staffly-hq/attendance-backend-go/internal/handler/http/response"
	scheduleservice "github.com/staffly-hq/attendance-backend-go/internal/service/schedule"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	scheduleService scheduleservice.ScheduleService
	loc             *time.Location
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	scheduleService scheduleservice.ScheduleService,
	loc *time.Location,
) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		scheduleService: scheduleService,
		loc:             loc,
	}
}

// Create implements EmployeeHandler
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create employee request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// Get implements EmployeeHandler
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update employee request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// List implements EmployeeHandler
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
		Page:       1,
		Limit:      10,
	}
	if a := r.URL.Query().Get("active"); a != "" {
		if parsed, err := strconv.ParseBool(a); err == nil {
			filter.Active = &parsed
		}
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

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// SetActive implements EmployeeHandler
func (h *employeeHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode set active request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.SetEmployeeActive(r.Context(), id, req.IsActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Employee deactivated"
	if req.IsActive {
		message = "Employee activated"
	}
	response.SuccessWithMessage(w, message, result)
}

// GetSchedule implements EmployeeHandler
func (h *employeeHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var date time.Time
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, h.loc)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	result, err := h.scheduleService.GetSchedule(r.Context(), id, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
