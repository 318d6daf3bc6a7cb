package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// GoalFilter - фильтры списка целей
type GoalFilter struct {
	EmployeeID *int64
	Status     string
}

// GoalRepository определяет интерфейс для работы с целями
type GoalRepository interface {
	Create(ctx context.Context, tenantID int64, goal *domain.Goal) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Goal, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Goal, error)
	List(ctx context.Context, tenantID int64, filter GoalFilter) ([]domain.Goal, error)
	Update(ctx context.Context, tenantID int64, goal *domain.Goal) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type goalRepository struct {
	tenantStore[domain.Goal, *domain.Goal]
}

// NewGoalRepository создаёт новый экземпляр репозитория
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{
		tenantStore: newTenantStore[domain.Goal](db, domain.ErrGoalNotFound),
	}
}

func (r *goalRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Goal, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *goalRepository) List(ctx context.Context, tenantID int64, filter GoalFilter) ([]domain.Goal, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db.Preload("Employee").
			Order("due_date ASC").
			Order("created_at DESC").
			Order("id DESC")
	})
}
