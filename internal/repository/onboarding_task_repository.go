package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// OnboardingTaskFilter - фильтры списка задач адаптации
type OnboardingTaskFilter struct {
	EmployeeID *int64
	Status     string
}

// OnboardingTaskRepository определяет интерфейс для работы с задачами адаптации
type OnboardingTaskRepository interface {
	Create(ctx context.Context, tenantID int64, task *domain.OnboardingTask) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.OnboardingTask, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.OnboardingTask, error)
	List(ctx context.Context, tenantID int64, filter OnboardingTaskFilter) ([]domain.OnboardingTask, error)
	Update(ctx context.Context, tenantID int64, task *domain.OnboardingTask) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type onboardingTaskRepository struct {
	tenantStore[domain.OnboardingTask, *domain.OnboardingTask]
}

// NewOnboardingTaskRepository создаёт новый экземпляр репозитория
func NewOnboardingTaskRepository(db *gorm.DB) OnboardingTaskRepository {
	return &onboardingTaskRepository{
		tenantStore: newTenantStore[domain.OnboardingTask](db, domain.ErrOnboardingTaskNotFound),
	}
}

func (r *onboardingTaskRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.OnboardingTask, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *onboardingTaskRepository) List(ctx context.Context, tenantID int64, filter OnboardingTaskFilter) ([]domain.OnboardingTask, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		// задачи без срока идут последними
		return db.Preload("Employee").
			Order("due_date IS NULL").
			Order("due_date ASC").
			Order("id ASC")
	})
}
