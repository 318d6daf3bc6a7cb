package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeFilter - фильтры списка сотрудников
type EmployeeFilter struct {
	Department string
	Status     string
}

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, tenantID int64, emp *domain.Employee) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Employee, error)
	List(ctx context.Context, tenantID int64, filter EmployeeFilter) ([]domain.Employee, error)
	Update(ctx context.Context, tenantID int64, emp *domain.Employee) error
	Delete(ctx context.Context, tenantID, id int64) error
	ExistsByEmail(ctx context.Context, tenantID int64, email string, excludeID *int64) (bool, error)
}

type employeeRepository struct {
	tenantStore[domain.Employee, *domain.Employee]
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{
		tenantStore: newTenantStore[domain.Employee](db, domain.ErrEmployeeNotFound).
			withConflict(domain.ErrDuplicateEmployeeEmail),
	}
}

func (r *employeeRepository) List(ctx context.Context, tenantID int64, filter EmployeeFilter) ([]domain.Employee, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.Department != "" {
			db = db.Where("department = ?", filter.Department)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		return db.Order("name ASC").Order("id ASC")
	})
}

// Delete удаляет сотрудника и отвязывает от него учётную запись
func (r *employeeRepository) Delete(ctx context.Context, tenantID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.User{}).
			Scopes(TenantScope(tenantID)).
			Where("employee_id = ?", id).
			Update("employee_id", nil).Error
		if err != nil {
			return err
		}

		return newTenantStore[domain.Employee](tx, domain.ErrEmployeeNotFound).Delete(ctx, tenantID, id)
	})
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, tenantID int64, email string, excludeID *int64) (bool, error) {
	count, err := r.count(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		db = db.Where("LOWER(email) = LOWER(?)", email)
		if excludeID != nil {
			db = db.Where("id != ?", *excludeID)
		}
		return db
	})
	return count > 0, err
}
