package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// ReviewService определяет интерфейс бизнес-логики для оценок эффективности
type ReviewService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateReviewRequest) (*domain.Review, error)
	List(ctx context.Context, tenantID int64, query dto.ReviewListQuery) ([]domain.Review, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Review, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateReviewRequest) (*domain.Review, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type reviewService struct {
	reviews   repository.ReviewRepository
	employees repository.EmployeeRepository
}

// NewReviewService создаёт новый экземпляр сервиса
func NewReviewService(reviews repository.ReviewRepository, employees repository.EmployeeRepository) ReviewService {
	return &reviewService{reviews: reviews, employees: employees}
}

func (s *reviewService) Create(ctx context.Context, tenantID int64, req *dto.CreateReviewRequest) (*domain.Review, error) {
	if req.EmployeeID == req.ReviewerID {
		return nil, domain.ErrSelfReview
	}

	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}
	reviewer, err := requireEmployee(ctx, s.employees, tenantID, req.ReviewerID, domain.ErrReviewerNotFound)
	if err != nil {
		return nil, err
	}

	reviewDate, err := domain.ParseDate(req.ReviewDate)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		EmployeeID:   req.EmployeeID,
		ReviewerID:   req.ReviewerID,
		ReviewPeriod: strings.TrimSpace(req.ReviewPeriod),
		ReviewDate:   reviewDate,
		Rating:       req.Rating,
		Strengths:    strings.TrimSpace(req.Strengths),
		Improvements: strings.TrimSpace(req.Improvements),
		Comments:     strings.TrimSpace(req.Comments),
		Status:       req.Status,
	}
	if review.Status == "" {
		review.Status = domain.ReviewStatusDraft
	}

	if err := s.reviews.Create(ctx, tenantID, review); err != nil {
		return nil, err
	}

	review.Employee = emp
	review.Reviewer = reviewer
	return review, nil
}

func (s *reviewService) List(ctx context.Context, tenantID int64, query dto.ReviewListQuery) ([]domain.Review, error) {
	return s.reviews.List(ctx, tenantID, repository.ReviewFilter{
		EmployeeID: query.EmployeeID,
		Status:     query.Status,
	})
}

func (s *reviewService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Review, error) {
	return s.reviews.GetWithEmployees(ctx, tenantID, id)
}

func (s *reviewService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateReviewRequest) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.ReviewerID != nil && *req.ReviewerID != review.ReviewerID {
		if *req.ReviewerID == review.EmployeeID {
			return nil, domain.ErrSelfReview
		}
		if _, err := requireEmployee(ctx, s.employees, tenantID, *req.ReviewerID, domain.ErrReviewerNotFound); err != nil {
			return nil, err
		}
		review.ReviewerID = *req.ReviewerID
	}
	if req.ReviewDate != nil {
		reviewDate, err := domain.ParseDate(*req.ReviewDate)
		if err != nil {
			return nil, err
		}
		review.ReviewDate = reviewDate
	}
	if req.ReviewPeriod != nil {
		review.ReviewPeriod = strings.TrimSpace(*req.ReviewPeriod)
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Strengths != nil {
		review.Strengths = strings.TrimSpace(*req.Strengths)
	}
	if req.Improvements != nil {
		review.Improvements = strings.TrimSpace(*req.Improvements)
	}
	if req.Comments != nil {
		review.Comments = strings.TrimSpace(*req.Comments)
	}
	if req.Status != nil {
		review.Status = *req.Status
	}

	if err := s.reviews.Update(ctx, tenantID, review); err != nil {
		return nil, err
	}
	return s.reviews.GetWithEmployees(ctx, tenantID, id)
}

func (s *reviewService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.reviews.Delete(ctx, tenantID, id)
}
