package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// RecognitionHandler обрабатывает CRUD-запросы к благодарностям
type RecognitionHandler struct {
	base
	recognitionService service.RecognitionService
}

// NewRecognitionHandler создаёт обработчик благодарностей
func NewRecognitionHandler(recognitionService service.RecognitionService, logger *slog.Logger) *RecognitionHandler {
	return &RecognitionHandler{base: newBase(logger), recognitionService: recognitionService}
}

func (h *RecognitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateRecognitionRequest
	if !h.decode(w, r, &req) {
		return
	}

	rec, err := h.recognitionService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, rec)
}

func (h *RecognitionHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.RecognitionListQuery{
		EmployeeID: employeeID,
		Category:   r.URL.Query().Get("category"),
	}
	if !h.validate(w, &query) {
		return
	}

	recognitions, err := h.recognitionService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, recognitions)
}

func (h *RecognitionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	rec, err := h.recognitionService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, rec)
}

func (h *RecognitionHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateRecognitionRequest
	if !h.decode(w, r, &req) {
		return
	}

	rec, err := h.recognitionService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, rec)
}

func (h *RecognitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.recognitionService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
