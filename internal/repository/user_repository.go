package repository

import (
	"context"
	"errors"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// UserRepository определяет интерфейс для работы с учётными записями
type UserRepository interface {
	Create(ctx context.Context, tenantID int64, user *domain.User) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.User, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.User, error)
	// GetByEmail ищет пользователя без учёта арендатора: email уникален глобально,
	// а арендатор при входе ещё неизвестен.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmployeeID(ctx context.Context, tenantID, employeeID int64) (bool, error)
	// CreateTenantWithAdmin создаёт арендатора, сотрудника-администратора и его
	// учётную запись в одной транзакции.
	CreateTenantWithAdmin(ctx context.Context, tenant *domain.Tenant, emp *domain.Employee, user *domain.User) error
}

type userRepository struct {
	tenantStore[domain.User, *domain.User]
}

// NewUserRepository создаёт новый экземпляр репозитория
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		tenantStore: userStore(db),
	}
}

func userStore(db *gorm.DB) tenantStore[domain.User, *domain.User] {
	return newTenantStore[domain.User](db, domain.ErrUserNotFound).withConflict(domain.ErrDuplicateUserEmail)
}

// Create различает два уникальных индекса users: email и employee_id
func (r *userRepository) Create(ctx context.Context, tenantID int64, user *domain.User) error {
	err := r.tenantStore.Create(ctx, tenantID, user)
	if !errors.Is(err, domain.ErrDuplicateUserEmail) || user.EmployeeID == nil {
		return err
	}

	taken, existsErr := r.ExistsByEmail(ctx, user.Email)
	if existsErr != nil {
		return errors.Join(err, existsErr)
	}
	if !taken {
		return domain.ErrEmployeeAlreadyLinked
	}
	return err
}

func (r *userRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.User, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmployeeID(ctx context.Context, tenantID, employeeID int64) (bool, error) {
	count, err := r.count(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	})
	return count > 0, err
}

func (r *userRepository) CreateTenantWithAdmin(ctx context.Context, tenant *domain.Tenant, emp *domain.Employee, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateTenantName
			}
			return err
		}

		employees := newTenantStore[domain.Employee](tx, domain.ErrEmployeeNotFound).
			withConflict(domain.ErrDuplicateEmployeeEmail)
		if err := employees.Create(ctx, tenant.ID, emp); err != nil {
			return err
		}

		user.EmployeeID = &emp.ID
		user.Employee = nil
		if err := userStore(tx).Create(ctx, tenant.ID, user); err != nil {
			return err
		}
		user.Employee = emp
		return nil
	})
}
