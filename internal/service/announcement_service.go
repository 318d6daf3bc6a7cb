package service

import (
	"context"
	"strings"
	"time"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// AnnouncementService определяет интерфейс бизнес-логики для объявлений
type AnnouncementService interface {
	Create(ctx context.Context, tenantID, authorID int64, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error)
	List(ctx context.Context, tenantID int64, query dto.AnnouncementListQuery) ([]domain.Announcement, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Announcement, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type announcementService struct {
	announcements repository.AnnouncementRepository
	now           func() time.Time
}

// NewAnnouncementService создаёт новый экземпляр сервиса
func NewAnnouncementService(announcements repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcements: announcements, now: time.Now}
}

func (s *announcementService) Create(ctx context.Context, tenantID, authorID int64, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
	publishDate := domain.Today(s.now())
	if req.PublishDate != "" {
		d, err := domain.ParseDate(req.PublishDate)
		if err != nil {
			return nil, err
		}
		publishDate = d
	}

	expiryDate, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if expiryDate != nil && expiryDate.Before(publishDate) {
		return nil, domain.ErrExpiryBeforePublish
	}

	a := &domain.Announcement{
		AuthorID:    authorID,
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Priority:    req.Priority,
		PublishDate: publishDate,
		ExpiryDate:  expiryDate,
	}
	if a.Priority == "" {
		a.Priority = domain.AnnouncementPriorityNormal
	}

	if err := s.announcements.Create(ctx, tenantID, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) List(ctx context.Context, tenantID int64, query dto.AnnouncementListQuery) ([]domain.Announcement, error) {
	var filter repository.AnnouncementFilter
	if query.ActiveOnly {
		today := domain.Today(s.now())
		filter.ActiveOn = &today
	}
	return s.announcements.List(ctx, tenantID, filter)
}

func (s *announcementService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Announcement, error) {
	return s.announcements.GetWithAuthor(ctx, tenantID, id)
}

func (s *announcementService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.PublishDate != nil {
		if a.PublishDate, err = domain.ParseDate(*req.PublishDate); err != nil {
			return nil, err
		}
	}
	if req.ExpiryDate != nil {
		// пустая строка снимает срок действия
		if a.ExpiryDate, err = parseOptionalDate(*req.ExpiryDate); err != nil {
			return nil, err
		}
	}
	if a.ExpiryDate != nil && a.ExpiryDate.Before(a.PublishDate) {
		return nil, domain.ErrExpiryBeforePublish
	}

	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		a.Content = strings.TrimSpace(*req.Content)
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}

	if err := s.announcements.Update(ctx, tenantID, a); err != nil {
		return nil, err
	}
	return s.announcements.GetWithAuthor(ctx, tenantID, id)
}

func (s *announcementService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.announcements.Delete(ctx, tenantID, id)
}
