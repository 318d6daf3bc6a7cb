package repository

import (
	"context"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// LeaveRequestFilter - фильтры списка заявок на отпуск
type LeaveRequestFilter struct {
	EmployeeID *int64
	Status     string
	Type       string
}

// LeaveRequestRepository определяет интерфейс для работы с заявками на отпуск
type LeaveRequestRepository interface {
	Create(ctx context.Context, tenantID int64, leave *domain.LeaveRequest) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.LeaveRequest, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.LeaveRequest, error)
	List(ctx context.Context, tenantID int64, filter LeaveRequestFilter) ([]domain.LeaveRequest, error)
	Update(ctx context.Context, tenantID int64, leave *domain.LeaveRequest) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type leaveRequestRepository struct {
	tenantStore[domain.LeaveRequest, *domain.LeaveRequest]
}

// NewLeaveRequestRepository создаёт новый экземпляр репозитория
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{
		tenantStore: newTenantStore[domain.LeaveRequest](db, domain.ErrLeaveRequestNotFound),
	}
}

func (r *leaveRequestRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.LeaveRequest, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *leaveRequestRepository) List(ctx context.Context, tenantID int64, filter LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.Type != "" {
			db = db.Where("leave_type = ?", filter.Type)
		}
		return db.Preload("Employee").
			Order("start_date DESC").
			Order("id DESC")
	})
}
