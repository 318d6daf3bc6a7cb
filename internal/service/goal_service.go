package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// GoalService определяет интерфейс бизнес-логики для целей
type GoalService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateGoalRequest) (*domain.Goal, error)
	List(ctx context.Context, tenantID int64, query dto.GoalListQuery) ([]domain.Goal, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Goal, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateGoalRequest) (*domain.Goal, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type goalService struct {
	goals     repository.GoalRepository
	employees repository.EmployeeRepository
	now       func() time.Time
}

// NewGoalService создаёт новый экземпляр сервиса
func NewGoalService(goals repository.GoalRepository, employees repository.EmployeeRepository) GoalService {
	return &goalService{
		goals:     goals,
		employees: employees,
		now:       time.Now,
	}
}

func (s *goalService) Create(ctx context.Context, tenantID int64, req *dto.CreateGoalRequest) (*domain.Goal, error) {
	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}

	dueDate, err := domain.ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	// Срок должен быть строго позже сегодняшнего дня
	if !s.isFuture(dueDate) {
		return nil, domain.ErrDueDateNotFuture
	}

	goal := &domain.Goal{
		EmployeeID:  req.EmployeeID,
		Objective:   strings.TrimSpace(req.Objective),
		Description: strings.TrimSpace(req.Description),
		DueDate:     dueDate,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		KeyResults:  req.KeyResults,
	}
	if goal.Priority == "" {
		goal.Priority = domain.GoalPriorityMedium
	}
	if goal.Status == "" {
		goal.Status = domain.GoalStatusNotStarted
	}
	if goal.KeyResults == nil {
		goal.KeyResults = []string{}
	}

	if err := s.goals.Create(ctx, tenantID, goal); err != nil {
		return nil, err
	}

	goal.Employee = emp
	return goal, nil
}

func (s *goalService) List(ctx context.Context, tenantID int64, query dto.GoalListQuery) ([]domain.Goal, error) {
	return s.goals.List(ctx, tenantID, repository.GoalFilter{
		EmployeeID: query.EmployeeID,
		Status:     query.Status,
	})
}

func (s *goalService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Goal, error) {
	return s.goals.GetWithEmployee(ctx, tenantID, id)
}

func (s *goalService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goals.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	// Статус, с которым цель будет сохранена
	status := goal.Status
	if req.Status != nil {
		status = *req.Status
	}

	if req.DueDate != nil {
		dueDate, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		if !s.isFuture(dueDate) && status != domain.GoalStatusCompleted {
			return nil, domain.ErrPastDueDateNotAllowed
		}
		goal.DueDate = dueDate
	}

	if req.KeyResults != nil {
		keyResults, err := decodeKeyResults(req.KeyResults)
		if err != nil {
			return nil, err
		}
		goal.KeyResults = keyResults
	}

	if req.EmployeeID != nil && *req.EmployeeID != goal.EmployeeID {
		if _, err := requireEmployee(ctx, s.employees, tenantID, *req.EmployeeID, nil); err != nil {
			return nil, err
		}
		goal.EmployeeID = *req.EmployeeID
	}
	if req.Objective != nil {
		goal.Objective = strings.TrimSpace(*req.Objective)
	}
	if req.Description != nil {
		goal.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	goal.Status = status

	if err := s.goals.Update(ctx, tenantID, goal); err != nil {
		return nil, err
	}

	return s.goals.GetWithEmployee(ctx, tenantID, id)
}

func (s *goalService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.goals.Delete(ctx, tenantID, id)
}

func (s *goalService) isFuture(date time.Time) bool {
	return date.After(domain.Today(s.now()))
}

// decodeKeyResults принимает только JSON-массив строк; null очищает список
func decodeKeyResults(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return []string{}, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrInvalidKeyResults
	}

	var keyResults []string
	if err := json.Unmarshal(trimmed, &keyResults); err != nil {
		return nil, domain.ErrInvalidKeyResults
	}
	if keyResults == nil {
		keyResults = []string{}
	}
	return keyResults, nil
}
