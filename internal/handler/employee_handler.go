package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// EmployeeHandler обрабатывает CRUD-запросы к сотрудникам
type EmployeeHandler struct {
	base
	employeeService service.EmployeeService
}

// NewEmployeeHandler создаёт обработчик сотрудников
func NewEmployeeHandler(employeeService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{base: newBase(logger), employeeService: employeeService}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.employeeService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, emp)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	query := dto.EmployeeListQuery{
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	}
	if !h.validate(w, &query) {
		return
	}

	employees, err := h.employeeService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	emp, err := h.employeeService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.employeeService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
