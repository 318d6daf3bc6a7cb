package repository

import (
	"context"
	"time"

	"github.com/hrms-api/internal/domain"
	"gorm.io/gorm"
)

// AnnouncementFilter - фильтры списка объявлений.
// ActiveOn оставляет объявления, опубликованные и не истёкшие на эту дату.
type AnnouncementFilter struct {
	ActiveOn *time.Time
}

// AnnouncementRepository определяет интерфейс для работы с объявлениями
type AnnouncementRepository interface {
	Create(ctx context.Context, tenantID int64, a *domain.Announcement) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Announcement, error)
	GetWithAuthor(ctx context.Context, tenantID, id int64) (*domain.Announcement, error)
	List(ctx context.Context, tenantID int64, filter AnnouncementFilter) ([]domain.Announcement, error)
	Update(ctx context.Context, tenantID int64, a *domain.Announcement) error
	Delete(ctx context.Context, tenantID, id int64) error
}

type announcementRepository struct {
	tenantStore[domain.Announcement, *domain.Announcement]
}

// NewAnnouncementRepository создаёт новый экземпляр репозитория
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{
		tenantStore: newTenantStore[domain.Announcement](db, domain.ErrAnnouncementNotFound),
	}
}

func (r *announcementRepository) GetWithAuthor(ctx context.Context, tenantID, id int64) (*domain.Announcement, error) {
	return r.get(ctx, tenantID, id, "Author")
}

func (r *announcementRepository) List(ctx context.Context, tenantID int64, filter AnnouncementFilter) ([]domain.Announcement, error) {
	return r.list(ctx, tenantID, func(db *gorm.DB) *gorm.DB {
		if filter.ActiveOn != nil {
			db = db.Where("publish_date <= ?", *filter.ActiveOn).
				Where("(expiry_date IS NULL OR expiry_date >= ?)", *filter.ActiveOn)
		}
		return db.Preload("Author").
			Order("publish_date DESC").
			Order("id DESC")
	})
}
