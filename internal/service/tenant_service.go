package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// TenantService определяет интерфейс бизнес-логики для арендатора
type TenantService interface {
	GetCurrent(ctx context.Context, tenantID int64) (*domain.Tenant, error)
	UpdateCurrent(ctx context.Context, tenantID int64, req *dto.UpdateTenantRequest) (*domain.Tenant, error)
}

type tenantService struct {
	tenants repository.TenantRepository
}

// NewTenantService создаёт новый экземпляр сервиса
func NewTenantService(tenants repository.TenantRepository) TenantService {
	return &tenantService{tenants: tenants}
}

func (s *tenantService) GetCurrent(ctx context.Context, tenantID int64) (*domain.Tenant, error) {
	return s.tenants.GetByID(ctx, tenantID)
}

func (s *tenantService) UpdateCurrent(ctx context.Context, tenantID int64, req *dto.UpdateTenantRequest) (*domain.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		exists, err := s.tenants.ExistsByName(ctx, name, &tenantID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateTenantName
		}
		tenant.Name = name
	}
	if req.ContactEmail != nil {
		tenant.ContactEmail = normalizeEmail(*req.ContactEmail)
	}
	if req.Status != nil {
		tenant.Status = *req.Status
	}

	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}
