package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/salary"
	"github.com/staffly-hq/attendance-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	UpdateBonus(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Report implements SalaryHandler
func (h *salaryHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	req := salary.ReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Force:      r.URL.Query().Get("calculate") == "force",
	}
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = parsed
	}

	result, err := h.salaryService.Report(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Calculate implements SalaryHandler
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.ComputeMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode calculate request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.ComputeMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated", result)
}

// MarkPaid implements SalaryHandler
func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	result, err := h.salaryService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", result)
}

// UpdateBonus implements SalaryHandler
func (h *salaryHandlerImpl) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	var req salary.UpdateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bonus request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.salaryService.UpdateBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated", result)
}
