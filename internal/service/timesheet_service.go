package service

import (
	"context"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// TimesheetService определяет интерфейс бизнес-логики для табелей
type TimesheetService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateTimesheetRequest) (*domain.Timesheet, error)
	List(ctx context.Context, tenantID int64, query dto.TimesheetListQuery) ([]domain.Timesheet, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Timesheet, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateTimesheetRequest) (*domain.Timesheet, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type timesheetService struct {
	timesheets repository.TimesheetRepository
	employees  repository.EmployeeRepository
}

// NewTimesheetService создаёт новый экземпляр сервиса
func NewTimesheetService(timesheets repository.TimesheetRepository, employees repository.EmployeeRepository) TimesheetService {
	return &timesheetService{timesheets: timesheets, employees: employees}
}

func (s *timesheetService) Create(ctx context.Context, tenantID int64, req *dto.CreateTimesheetRequest) (*domain.Timesheet, error) {
	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	ts := &domain.Timesheet{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		HoursWorked: req.HoursWorked,
		Project:     strings.TrimSpace(req.Project),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
	}
	if ts.Status == "" {
		ts.Status = domain.TimesheetStatusDraft
	}

	if err := s.timesheets.Create(ctx, tenantID, ts); err != nil {
		return nil, err
	}

	ts.Employee = emp
	return ts, nil
}

func (s *timesheetService) List(ctx context.Context, tenantID int64, query dto.TimesheetListQuery) ([]domain.Timesheet, error) {
	from, err := parseOptionalDate(query.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(query.To)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.ErrInvalidDateRange
	}

	return s.timesheets.List(ctx, tenantID, repository.TimesheetFilter{
		EmployeeID: query.EmployeeID,
		Status:     query.Status,
		From:       from,
		To:         to,
	})
}

func (s *timesheetService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Timesheet, error) {
	return s.timesheets.GetWithEmployee(ctx, tenantID, id)
}

func (s *timesheetService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateTimesheetRequest) (*domain.Timesheet, error) {
	ts, err := s.timesheets.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if ts.Date, err = domain.ParseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.HoursWorked != nil {
		ts.HoursWorked = *req.HoursWorked
	}
	if req.Project != nil {
		ts.Project = strings.TrimSpace(*req.Project)
	}
	if req.Description != nil {
		ts.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		ts.Status = *req.Status
	}

	if err := s.timesheets.Update(ctx, tenantID, ts); err != nil {
		return nil, err
	}
	return s.timesheets.GetWithEmployee(ctx, tenantID, id)
}

func (s *timesheetService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.timesheets.Delete(ctx, tenantID, id)
}
