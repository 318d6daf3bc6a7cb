package service

import (
	"context"
	"strings"
	"time"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// LeaveRequestService определяет интерфейс бизнес-логики для заявок на отпуск
type LeaveRequestService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateLeaveRequestRequest) (*domain.LeaveRequest, error)
	List(ctx context.Context, tenantID int64, query dto.LeaveRequestListQuery) ([]domain.LeaveRequest, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.LeaveRequest, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateLeaveRequestRequest) (*domain.LeaveRequest, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type leaveRequestService struct {
	leaves    repository.LeaveRequestRepository
	employees repository.EmployeeRepository
}

// NewLeaveRequestService создаёт новый экземпляр сервиса
func NewLeaveRequestService(leaves repository.LeaveRequestRepository, employees repository.EmployeeRepository) LeaveRequestService {
	return &leaveRequestService{leaves: leaves, employees: employees}
}

func (s *leaveRequestService) Create(ctx context.Context, tenantID int64, req *dto.CreateLeaveRequestRequest) (*domain.LeaveRequest, error) {
	emp, err := requireEmployee(ctx, s.employees, tenantID, req.EmployeeID, nil)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	leave := &domain.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     domain.LeaveStatusPending,
	}

	if err := s.leaves.Create(ctx, tenantID, leave); err != nil {
		return nil, err
	}

	leave.Employee = emp
	return leave, nil
}

func (s *leaveRequestService) List(ctx context.Context, tenantID int64, query dto.LeaveRequestListQuery) ([]domain.LeaveRequest, error) {
	return s.leaves.List(ctx, tenantID, repository.LeaveRequestFilter{
		EmployeeID: query.EmployeeID,
		Status:     query.Status,
		Type:       query.Type,
	})
}

func (s *leaveRequestService) GetByID(ctx context.Context, tenantID, id int64) (*domain.LeaveRequest, error) {
	return s.leaves.GetWithEmployee(ctx, tenantID, id)
}

func (s *leaveRequestService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateLeaveRequestRequest) (*domain.LeaveRequest, error) {
	leave, err := s.leaves.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		if leave.StartDate, err = domain.ParseDate(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if leave.EndDate, err = domain.ParseDate(*req.EndDate); err != nil {
			return nil, err
		}
	}
	// Порядок дат проверяется уже после слияния с сохранёнными значениями
	if leave.EndDate.Before(leave.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}

	if req.Type != nil {
		leave.Type = *req.Type
	}
	if req.Reason != nil {
		leave.Reason = strings.TrimSpace(*req.Reason)
	}
	if req.Status != nil {
		leave.Status = *req.Status
	}

	if err := s.leaves.Update(ctx, tenantID, leave); err != nil {
		return nil, err
	}
	return s.leaves.GetWithEmployee(ctx, tenantID, id)
}

func (s *leaveRequestService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.leaves.Delete(ctx, tenantID, id)
}

func parseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := domain.ParseDate(startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := domain.ParseDate(endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return start, end, nil
}
