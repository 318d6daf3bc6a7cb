package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// TenantHandler обрабатывает запросы к арендатору текущего пользователя
type TenantHandler struct {
	base
	tenantService service.TenantService
}

// NewTenantHandler создаёт обработчик арендатора
func NewTenantHandler(tenantService service.TenantService, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{base: newBase(logger), tenantService: tenantService}
}

func (h *TenantHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetCurrent(r.Context(), claims.TenantID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if !h.decode(w, r, &req) {
		return
	}

	tenant, err := h.tenantService.UpdateCurrent(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tenant)
}
