package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/hrms-api/internal/auth"
	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/middleware"
)

const maxBodyBytes = 1 << 20

var errMissingClaims = errors.New("missing authentication claims")

// base - общие для всех обработчиков разбор запроса и запись ответа
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// decode читает JSON-тело и проверяет его по тегам validate
func (h *base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(w, http.StatusBadRequest, "invalid request body", "request body is empty")
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return h.validate(w, dst)
}

func (h *base) validate(w http.ResponseWriter, v any) bool {
	if err := h.validator.Struct(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

func (h *base) extractID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// claims возвращает пользователя из токена; маршрут без аутентификации - ошибка конфигурации
func (h *base) claims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "internal error", slog.Any("error", errMissingClaims))
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "")
		return nil, false
	}
	return claims, true
}

// queryInt64 разбирает необязательный числовой параметр запроса
func (h *base) queryInt64(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameter", fmt.Sprintf("%s must be an integer", name))
		return nil, false
	}
	return &v, true
}

func (h *base) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domainErr, ok := domain.AsError(err); ok {
		h.respondError(w, statusForKind(domainErr.Kind), domainErr.Message, "")
		return
	}

	h.logger.ErrorContext(r.Context(), "internal error",
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		slog.Any("error", err),
	)
	h.respondError(w, http.StatusInternalServerError, "internal server error", "")
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
