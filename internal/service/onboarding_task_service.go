package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// OnboardingTaskService определяет интерфейс бизнес-логики для задач адаптации
type OnboardingTaskService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateOnboardingTaskRequest) (*domain.OnboardingTask, error)
	List(ctx context.Context, tenantID int64, query dto.OnboardingTaskListQuery) ([]domain.OnboardingTask, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.OnboardingTask, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateOnboardingTaskRequest) (*domain.OnboardingTask, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type onboardingTaskService struct {
	tasks     repository.OnboardingTaskRepository
	employees repository.EmployeeRepository
}

// NewOnboardingTaskService создаёт новый экземпляр сервиса
func NewOnboardingTaskService(tasks repository.OnboardingTaskRepository, employees repository.EmployeeRepository) OnboardingTaskService {
	return &onboardingTaskService{tasks: tasks, employees: employees}
}

func (s *onboardingTaskService) Create(ctx context.Context, tenantID int64, req *dto.CreateOnboardingTaskRequest) (*domain.OnboardingTask, error) {
	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &domain.OnboardingTask{
		EmployeeID:  req.EmployeeID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DueDate:     dueDate,
		Status:      req.Status,
	}
	if task.Status == "" {
		task.Status = domain.OnboardingStatusPending
	}

	if err := s.tasks.Create(ctx, tenantID, task); err != nil {
		return nil, err
	}

	task.Employee = emp
	return task, nil
}

func (s *onboardingTaskService) List(ctx context.Context, tenantID int64, query dto.OnboardingTaskListQuery) ([]domain.OnboardingTask, error) {
	return s.tasks.List(ctx, tenantID, repository.OnboardingTaskFilter{
		EmployeeID: query.EmployeeID,
		Status:     query.Status,
	})
}

func (s *onboardingTaskService) GetByID(ctx context.Context, tenantID, id int64) (*domain.OnboardingTask, error) {
	return s.tasks.GetWithEmployee(ctx, tenantID, id)
}

func (s *onboardingTaskService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateOnboardingTaskRequest) (*domain.OnboardingTask, error) {
	task, err := s.tasks.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.DueDate != nil {
		if task.DueDate, err = parseOptionalDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.tasks.Update(ctx, tenantID, task); err != nil {
		return nil, err
	}
	return s.tasks.GetWithEmployee(ctx, tenantID, id)
}

func (s *onboardingTaskService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.tasks.Delete(ctx, tenantID, id)
}
