package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// LeaveRequestHandler обрабатывает CRUD-запросы к заявкам на отпуск
type LeaveRequestHandler struct {
	base
	leaveRequestService service.LeaveRequestService
}

// NewLeaveRequestHandler создаёт обработчик заявок на отпуск
func NewLeaveRequestHandler(leaveRequestService service.LeaveRequestService, logger *slog.Logger) *LeaveRequestHandler {
	return &LeaveRequestHandler{base: newBase(logger), leaveRequestService: leaveRequestService}
}

func (h *LeaveRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	leave, err := h.leaveRequestService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, leave)
}

func (h *LeaveRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.LeaveRequestListQuery{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
		Type:       r.URL.Query().Get("type"),
	}
	if !h.validate(w, &query) {
		return
	}

	leaves, err := h.leaveRequestService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, leaves)
}

func (h *LeaveRequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	leave, err := h.leaveRequestService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, leave)
}

func (h *LeaveRequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateLeaveRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	leave, err := h.leaveRequestService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, leave)
}

func (h *LeaveRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.leaveRequestService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
