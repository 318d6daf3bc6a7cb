package handler

import (
	"log/slog"
	"net/http"

	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/service"
)

// DocumentHandler обрабатывает CRUD-запросы к документам и ссылки на их файлы
type DocumentHandler struct {
	base
	documentService service.DocumentService
}

// NewDocumentHandler создаёт обработчик документов
func NewDocumentHandler(documentService service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{base: newBase(logger), documentService: documentService}
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if !h.decode(w, r, &req) {
		return
	}

	doc, err := h.documentService.Create(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	employeeID, ok := h.queryInt64(w, r, "employeeId")
	if !ok {
		return
	}
	query := dto.DocumentListQuery{
		EmployeeID: employeeID,
		Category:   r.URL.Query().Get("category"),
	}
	if !h.validate(w, &query) {
		return
	}

	docs, err := h.documentService.List(r.Context(), claims.TenantID, query)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if !h.decode(w, r, &req) {
		return
	}

	doc, err := h.documentService.Update(r.Context(), claims.TenantID, id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.documentService.Delete(r.Context(), claims.TenantID, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadURL выдаёт подписанную ссылку для загрузки файла в хранилище
func (h *DocumentHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	var req dto.UploadURLRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.documentService.UploadURL(r.Context(), claims.TenantID, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// DownloadURL выдаёт подписанную ссылку на файл документа
func (h *DocumentHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	resp, err := h.documentService.DownloadURL(r.Context(), claims.TenantID, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
