package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// RecognitionService определяет интерфейс бизнес-логики для благодарностей
type RecognitionService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateRecognitionRequest) (*domain.Recognition, error)
	List(ctx context.Context, tenantID int64, query dto.RecognitionListQuery) ([]domain.Recognition, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Recognition, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateRecognitionRequest) (*domain.Recognition, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type recognitionService struct {
	recognitions repository.RecognitionRepository
	employees    repository.EmployeeRepository
}

// NewRecognitionService создаёт новый экземпляр сервиса
func NewRecognitionService(recognitions repository.RecognitionRepository, employees repository.EmployeeRepository) RecognitionService {
	return &recognitionService{recognitions: recognitions, employees: employees}
}

func (s *recognitionService) Create(ctx context.Context, tenantID int64, req *dto.CreateRecognitionRequest) (*domain.Recognition, error) {
	if req.FromEmployeeID == req.ToEmployeeID {
		return nil, domain.ErrSelfRecognition
	}

	from, err := requireEmployee(ctx, s.employees, tenantID, req.FromEmployeeID, nil)
	if err != nil {
		return nil, err
	}
	to, err := requireEmployee(ctx, s.employees, tenantID, req.ToEmployeeID, nil)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recognition{
		FromEmployeeID: req.FromEmployeeID,
		ToEmployeeID:   req.ToEmployeeID,
		Category:       req.Category,
		Message:        strings.TrimSpace(req.Message),
	}
	if err := s.recognitions.Create(ctx, tenantID, rec); err != nil {
		return nil, err
	}

	rec.FromEmployee = from
	rec.ToEmployee = to
	return rec, nil
}

func (s *recognitionService) List(ctx context.Context, tenantID int64, query dto.RecognitionListQuery) ([]domain.Recognition, error) {
	return s.recognitions.List(ctx, tenantID, repository.RecognitionFilter{
		EmployeeID: query.EmployeeID,
		Category:   query.Category,
	})
}

func (s *recognitionService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Recognition, error) {
	return s.recognitions.GetWithEmployees(ctx, tenantID, id)
}

func (s *recognitionService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateRecognitionRequest) (*domain.Recognition, error) {
	rec, err := s.recognitions.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		rec.Category = *req.Category
	}
	if req.Message != nil {
		rec.Message = strings.TrimSpace(*req.Message)
	}

	if err := s.recognitions.Update(ctx, tenantID, rec); err != nil {
		return nil, err
	}
	return s.recognitions.GetWithEmployees(ctx, tenantID, id)
}

func (s *recognitionService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.recognitions.Delete(ctx, tenantID, id)
}
