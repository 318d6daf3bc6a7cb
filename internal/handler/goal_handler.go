package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// GoalHandler обрабатывает CRUD-запросы к целям
type GoalHandler struct {
	base
	goalService service.GoalService
}

// NewGoalHandler создаёт обработчик целей
func NewGoalHandler(goalService service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{base: newBase(logger), goalService: goalService}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !h.decode(w, r, &req) {
		return
	}

	goal, err := h.goalService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.GoalListQuery{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
	}
	if !h.validate(w, &query) {
		return
	}

	goals, err := h.goalService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	goal, err := h.goalService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !h.decode(w, r, &req) {
		return
	}

	goal, err := h.goalService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.goalService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
