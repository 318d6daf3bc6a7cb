package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// RecognitionFilter - фильтры списка благодарностей; EmployeeID - получатель
type RecognitionFilter struct {
	EmployeeID *int64
	Category   string
}

// RecognitionRepository определяет интерфейс для работы с благодарностями
type RecognitionRepository interface {
	Create(ctx context.Context, tenantID int64, rec *domain.Recognition) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Recognition, error)
	GetWithEmployees(ctx context.Context, tenantID, id int64) (*domain.Recognition, error)
	List(ctx context.Context, tenantID int64, filter RecognitionFilter) ([]domain.Recognition, error)
	Update(ctx context.Context, tenantID int64, rec *domain.Recognition) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type recognitionRepository struct {
	tenantStore[domain.Recognition, *domain.Recognition]
}

// NewRecognitionRepository создаёт новый экземпляр репозитория
func NewRecognitionRepository(db *gorm.DB) RecognitionRepository {
	return &recognitionRepository{
		tenantStore: newTenantStore[domain.Recognition](db, domain.ErrRecognitionNotFound),
	}
}

func (r *recognitionRepository) GetWithEmployees(ctx context.Context, tenantID, id int64) (*domain.Recognition, error) {
	return r.get(ctx, tenantID, id, "FromEmployee", "ToEmployee")
}

func (r *recognitionRepository) List(ctx context.Context, tenantID int64, filter RecognitionFilter) ([]domain.Recognition, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("to_employee_id = ?", *filter.EmployeeID)
		}
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		return db.Preload("FromEmployee").Preload("ToEmployee").
			Order("created_at DESC").
			Order("id DESC")
	})
}
