package repository

import (
	"context"
	"time"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// TimesheetFilter - фильтры списка табелей; From и To включительно
type TimesheetFilter struct {
	EmployeeID *int64
	Status     string
	From       *time.Time
	To         *time.Time
}

// TimesheetRepository определяет интерфейс для работы с табелями
type TimesheetRepository interface {
	Create(ctx context.Context, tenantID int64, ts *domain.Timesheet) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Timesheet, error)
	GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Timesheet, error)
	List(ctx context.Context, tenantID int64, filter TimesheetFilter) ([]domain.Timesheet, error)
	Update(ctx context.Context, tenantID int64, ts *domain.Timesheet) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type timesheetRepository struct {
	tenantStore[domain.Timesheet, *domain.Timesheet]
}

// NewTimesheetRepository создаёт новый экземпляр репозитория
func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{
		tenantStore: newTenantStore[domain.Timesheet](db, domain.ErrTimesheetNotFound),
	}
}

func (r *timesheetRepository) GetWithEmployee(ctx context.Context, tenantID, id int64) (*domain.Timesheet, error) {
	return r.get(ctx, tenantID, id, "Employee")
}

func (r *timesheetRepository) List(ctx context.Context, tenantID int64, filter TimesheetFilter) ([]domain.Timesheet, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != nil {
			db = db.Where("employee_id = ?", *filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.From != nil {
			db = db.Where("work_date >= ?", *filter.From)
		}
		if filter.To != nil {
			db = db.Where("work_date <= ?", *filter.To)
		}
		return db.Preload("Employee").
			Order("work_date DESC").
			Order("id DESC")
	})
}
