package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/mailer"
	"github.com/hrms-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, tenantID int64, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	List(ctx context.Context, tenantID int64, query dto.EmployeeListQuery) ([]domain.Employee, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Employee, error)
	Update(ctx context.Context, tenantID, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

type employeeService struct {
	employees repository.EmployeeRepository
	tenants   repository.TenantRepository
	mailer    mailer.Mailer
	logger    *slog.Logger
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	employees repository.EmployeeRepository,
	tenants repository.TenantRepository,
	m mailer.Mailer,
	logger *slog.Logger,
) EmployeeService {
	return &employeeService{
		employees: employees,
		tenants:   tenants,
		mailer:    m,
		logger:    logger,
	}
}

func (s *employeeService) Create(ctx context.Context, tenantID int64, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	email := normalizeEmail(req.Email)

	// Проверяем уникальность email в пределах арендатора
	exists, err := s.employees.ExistsByEmail(ctx, tenantID, email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmployeeEmail
	}

	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Role:       strings.TrimSpace(req.Role),
		Department: strings.TrimSpace(req.Department),
		HireDate:   hireDate,
		Status:     req.Status,
	}
	if emp.Status == "" {
		emp.Status = domain.EmployeeStatusActive
	}

	if err := s.employees.Create(ctx, tenantID, emp); err != nil {
		return nil, err
	}

	s.sendWelcome(ctx, tenantID, emp)
	return emp, nil
}

// sendWelcome отправляет приветственное письмо; ошибки только логируются
func (s *employeeService) sendWelcome(ctx context.Context, tenantID int64, emp *domain.Employee) {
	tenantName := ""
	if tenant, err := s.tenants.GetByID(ctx, tenantID); err == nil {
		tenantName = tenant.Name
	}

	err := s.mailer.SendWelcome(ctx, mailer.WelcomeMessage{
		To:           emp.Email,
		EmployeeName: emp.Name,
		TenantName:   tenantName,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to send welcome email",
			slog.Int64("tenant_id", tenantID),
			slog.Int64("employee_id", emp.ID),
			slog.Any("error", err),
		)
	}
}

func (s *employeeService) List(ctx context.Context, tenantID int64, query dto.EmployeeListQuery) ([]domain.Employee, error) {
	return s.employees.List(ctx, tenantID, repository.EmployeeFilter{
		Department: query.Department,
		Status:     query.Status,
	})
}

func (s *employeeService) GetByID(ctx context.Context, tenantID, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, tenantID, id)
}

func (s *employeeService) Update(ctx context.Context, tenantID, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		exists, err := s.employees.ExistsByEmail(ctx, tenantID, email, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEmployeeEmail
		}
		emp.Email = email
	}
	if req.HireDate != nil {
		hireDate, err := parseOptionalDate(*req.HireDate)
		if err != nil {
			return nil, err
		}
		emp.HireDate = hireDate
	}
	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		emp.Role = strings.TrimSpace(*req.Role)
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}

	if err := s.employees.Update(ctx, tenantID, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, tenantID, id int64) error {
	return s.employees.Delete(ctx, tenantID, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
