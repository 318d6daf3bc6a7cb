package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// AuthHandler обрабатывает регистрацию арендатора, вход и учётные записи
type AuthHandler struct {
	base
	authService service.AuthService
}

// NewAuthHandler создаёт обработчик аутентификации
func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{base: newBase(logger), authService: authService}
}

func (h *AuthHandler) SetupTenantAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.SetupTenantAdminRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.authService.SetupTenantAdmin(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "tenant registered",
		slog.Int64("tenant_id", resp.User.TenantID),
		slog.Int64("user_id", resp.User.ID),
	)
	h.respondJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	user, err := h.authService.Profile(r.Context(), claims.TenantID, claims.UserID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.authService.CreateUser(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, user)
}
