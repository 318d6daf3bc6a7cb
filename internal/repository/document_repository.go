package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// DocumentFilter - фильтры списка документов
type DocumentFilter struct {
	EmployeeID *int64
	Category   string
}

// DocumentRepository определяет интерфейс для работы с документами
type DocumentRepository interface {
	Create(ctx context.Context, tenantID int64, doc *domain.Document) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Document, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Document, error)
	List(ctx context.Context, tenantID int64, filter DocumentFilter) ([]domain.Document, error)
	Update(ctx context.Context, tenantID int64, doc *domain.Document) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type documentRepository struct {
	tenantStore[domain.Document, *domain.Document]
}

// NewDocumentRepository создаёт новый экземпляр репозитория
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{
		tenantStore: newTenantStore[domain.Document](db, domain.ErrDocumentNotFound),
	}
}

func (r *documentRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Document, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *documentRepository) List(ctx context.Context, tenantID int64, filter DocumentFilter) ([]domain.Document, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		return db.Preload("Employee").
			Order("created_at DESC").
			Order("id DESC")
	})
}
