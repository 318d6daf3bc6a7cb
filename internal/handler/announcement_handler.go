package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// AnnouncementHandler обрабатывает CRUD-запросы к объявлениям
type AnnouncementHandler struct {
	base
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler создаёт обработчик объявлений
func NewAnnouncementHandler(announcementService service.AnnouncementService, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{base: newBase(logger), announcementService: announcementService}
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.announcementService.Create(r.Context(), claims.TenantID, claims.UserID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, a)
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	query := dto.AnnouncementListQuery{
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}

	announcements, err := h.announcementService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	a, err := h.announcementService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, a)
}

func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.announcementService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, a)
}

func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
