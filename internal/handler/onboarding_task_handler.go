package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// OnboardingTaskHandler обрабатывает CRUD-запросы к задачам адаптации
type OnboardingTaskHandler struct {
	base
	onboardingTaskService service.OnboardingTaskService
}

// NewOnboardingTaskHandler создаёт обработчик задач адаптации
func NewOnboardingTaskHandler(onboardingTaskService service.OnboardingTaskService, logger *slog.Logger) *OnboardingTaskHandler {
	return &OnboardingTaskHandler{base: newBase(logger), onboardingTaskService: onboardingTaskService}
}

func (h *OnboardingTaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateOnboardingTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.onboardingTaskService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, task)
}

func (h *OnboardingTaskHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.OnboardingTaskListQuery{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
	}
	if !h.validate(w, &query) {
		return
	}

	tasks, err := h.onboardingTaskService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

func (h *OnboardingTaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	task, err := h.onboardingTaskService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, task)
}

func (h *OnboardingTaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOnboardingTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.onboardingTaskService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, task)
}

func (h *OnboardingTaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.onboardingTaskService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
