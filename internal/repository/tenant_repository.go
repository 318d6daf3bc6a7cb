package repository

import (
	"context"
	"errors"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// TenantRepository определяет интерфейс для работы с арендаторами
type TenantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository создаёт новый экземпляр репозитория
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.WithContext(ctx).First(&tenant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	result := r.db.WithContext(ctx).
		Model(tenant).
		Select("name", "contact_email", "status", "updated_at").
		Updates(tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateTenantName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *tenantRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Tenant{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
