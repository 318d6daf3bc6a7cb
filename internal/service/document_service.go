package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
	"github.com/hrms-api/internal/storage"
)

// DocumentService определяет интерфейс бизнес-логики для документов
type DocumentService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateDocumentRequest) (*domain.Document, error)
	List(ctx context.Context, tenantID int64, query dto.DocumentListQuery) ([]domain.Document, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Document, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateDocumentRequest) (*domain.Document, error)
	Delete(ctx context.Context, tenantID, id int64) error
	UploadURL(ctx context.Context, tenantID int64, req *dto.UploadURLRequest) (*dto.FileURLResponse, error)
	DownloadURL(ctx context.Context, tenantID, id int64) (*dto.FileURLResponse, error)
}

type documentService struct {
	documents repository.DocumentRepository
	employees repository.EmployeeRepository
	files     storage.FileStorage
}

// NewDocumentService создаёт новый экземпляр сервиса.
// files может быть nil, тогда ссылки на файлы недоступны.
func NewDocumentService(
	documents repository.DocumentRepository,
	employees repository.EmployeeRepository,
	files storage.FileStorage,
) DocumentService {
	return &documentService{documents: documents, employees: employees, files: files}
}

func (s *documentService) Create(ctx context.Context, tenantID int64, req *dto.CreateDocumentRequest) (*domain.Document, error) {
	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}

	key := strings.TrimSpace(req.StorageKey)
	if key != "" && !storage.BelongsToTenant(key, tenantID) {
		return nil, domain.ErrInvalidStorageKey
	}

	doc := &domain.Document{
		EmployeeID: req.EmployeeID,
		Title:      strings.TrimSpace(req.Title),
		Category:   req.Category,
		FileName:   strings.TrimSpace(req.FileName),
		FileURL:    strings.TrimSpace(req.FileURL),
		StorageKey: key,
	}
	if err := s.documents.Create(ctx, tenantID, doc); err != nil {
		return nil, err
	}

	doc.Employee = emp
	return doc, nil
}

func (s *documentService) List(ctx context.Context, tenantID int64, query dto.DocumentListQuery) ([]domain.Document, error) {
	return s.documents.List(ctx, tenantID, repository.DocumentFilter{
		EmployeeID: query.EmployeeID,
		Category:   query.Category,
	})
}

func (s *documentService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Document, error) {
	return s.documents.GetWithEmployee(ctx, tenantID, id)
}

func (s *documentService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.StorageKey != nil {
		key := strings.TrimSpace(*req.StorageKey)
		if key != "" && !storage.BelongsToTenant(key, tenantID) {
			return nil, domain.ErrInvalidStorageKey
		}
		doc.StorageKey = key
	}
	if req.Title != nil {
		doc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		doc.Category = *req.Category
	}
	if req.FileName != nil {
		doc.FileName = strings.TrimSpace(*req.FileName)
	}
	if req.FileURL != nil {
		doc.FileURL = strings.TrimSpace(*req.FileURL)
	}

	if err := s.documents.Update(ctx, tenantID, doc); err != nil {
		return nil, err
	}
	return s.documents.GetWithEmployee(ctx, tenantID, id)
}

func (s *documentService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.documents.Delete(ctx, tenantID, id)
}

func (s *documentService) UploadURL(ctx context.Context, tenantID int64, req *dto.UploadURLRequest) (*dto.FileURLResponse, error) {
	if s.files == nil {
		return nil, domain.ErrStorageUnavailable
	}

	key := storage.NewObjectKey(tenantID, req.FileName)
	url, err := s.files.PresignUpload(ctx, key)
	if err != nil {
		return nil, err
	}
	return &dto.FileURLResponse{URL: url, StorageKey: key}, nil
}

func (s *documentService) DownloadURL(ctx context.Context, tenantID, id int64) (*dto.FileURLResponse, error) {
	if s.files == nil {
		return nil, domain.ErrStorageUnavailable
	}

	doc, err := s.documents.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if doc.StorageKey == "" {
		return nil, domain.ErrNoStoredFile
	}

	url, err := s.files.PresignDownload(ctx, doc.StorageKey)
	if err != nil {
		return nil, err
	}
	return &dto.FileURLResponse{URL: url, StorageKey: doc.StorageKey}, nil
}
