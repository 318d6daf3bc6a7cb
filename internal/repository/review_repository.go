package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// ReviewFilter - фильтры списка оценок
type ReviewFilter struct {
	EmployeeID *int64
	Status     string
}

// ReviewRepository определяет интерфейс для работы с оценками
type ReviewRepository interface {
	Create(ctx context.Context, tenantID int64, review *domain.Review) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Review, error)
	GetWithEmployees(ctx context.Context, tenantID, id int64) (*domain.Review, error)
	List(ctx context.Context, tenantID int64, filter ReviewFilter) ([]domain.Review, error)
	Update(ctx context.Context, tenantID int64, review *domain.Review) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type reviewRepository struct {
	tenantStore[domain.Review, *domain.Review]
}

// NewReviewRepository создаёт новый экземпляр репозитория
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		tenantStore: newTenantStore[domain.Review](db, domain.ErrReviewNotFound),
	}
}

func (r *reviewRepository) GetWithEmployees(ctx context.Context, tenantID, id int64) (*domain.Review, error) {
	return r.get(ctx, tenantID, id, "Employee", "Reviewer")
}

func (r *reviewRepository) List(ctx context.Context, tenantID int64, filter ReviewFilter) ([]domain.Review, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db.Preload("Employee").Preload("Reviewer").
			Order("review_date DESC").
			Order("id DESC")
	})
}
