package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// TimesheetHandler обрабатывает CRUD-запросы к табелям
type TimesheetHandler struct {
	base
	timesheetService service.TimesheetService
}

// NewTimesheetHandler создаёт обработчик табелей
func NewTimesheetHandler(timesheetService service.TimesheetService, logger *slog.Logger) *TimesheetHandler {
	return &TimesheetHandler{base: newBase(logger), timesheetService: timesheetService}
}

func (h *TimesheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateTimesheetRequest
	if !h.decode(w, r, &req) {
		return
	}

	ts, err := h.timesheetService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, ts)
}

func (h *TimesheetHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.TimesheetListQuery{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}
	if !h.validate(w, &query) {
		return
	}

	timesheets, err := h.timesheetService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, timesheets)
}

func (h *TimesheetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	ts, err := h.timesheetService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ts)
}

func (h *TimesheetHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTimesheetRequest
	if !h.decode(w, r, &req) {
		return
	}

	ts, err := h.timesheetService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ts)
}

func (h *TimesheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.timesheetService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
