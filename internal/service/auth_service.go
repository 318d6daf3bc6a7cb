package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hrms-api/internal/auth"
	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/dto"
	"github.com/hrms-api/internal/repository"
)

// TokenIssuer выдаёт подписанный токен по данным пользователя
type TokenIssuer interface {
	Issue(claims auth.Claims) (string, time.Time, error)
}

// AuthService определяет интерфейс регистрации и входа
type AuthService interface {
	SetupTenantAdmin(ctx context.Context, req *dto.SetupTenantAdminRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Profile(ctx context.Context, tenantID, userID int64) (*domain.User, error)
	CreateUser(ctx context.Context, tenantID int64, req *dto.CreateUserRequest) (*domain.User, error)
}

type authService struct {
	users     repository.UserRepository
	tenants   repository.TenantRepository
	employees repository.EmployeeRepository
	tokens    TokenIssuer
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(
	users repository.UserRepository,
	tenants repository.TenantRepository,
	employees repository.EmployeeRepository,
	tokens TokenIssuer,
) AuthService {
	return &authService{
		users:     users,
		tenants:   tenants,
		employees: employees,
		tokens:    tokens,
	}
}

func (s *authService) SetupTenantAdmin(ctx context.Context, req *dto.SetupTenantAdminRequest) (*dto.AuthResponse, error) {
	tenantName := strings.TrimSpace(req.TenantName)
	email := normalizeEmail(req.AdminEmail)

	exists, err := s.tenants.ExistsByName(ctx, tenantName, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTenantName
	}

	exists, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUserEmail
	}

	hash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	contactEmail := normalizeEmail(req.ContactEmail)
	if contactEmail == "" {
		contactEmail = email
	}
	tenant := &domain.Tenant{
		Name:         tenantName,
		ContactEmail: contactEmail,
		Status:       domain.TenantStatusActive,
	}

	adminName := strings.TrimSpace(req.AdminName)
	if adminName == "" {
		adminName, _, _ = strings.Cut(email, "@")
	}
	emp := &domain.Employee{
		Name:       adminName,
		Email:      email,
		Role:       domain.AdminJobTitle,
		Department: domain.AdminDepartment,
		Status:     domain.EmployeeStatusActive,
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	if err := s.users.CreateTenantWithAdmin(ctx, tenant, emp, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.CheckDummyPassword(req.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	tenant, err := s.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Status != domain.TenantStatusActive {
		return nil, domain.ErrTenantInactive
	}

	return s.issue(user)
}

func (s *authService) Profile(ctx context.Context, tenantID, userID int64) (*domain.User, error) {
	return s.users.GetWithEmployee(ctx, tenantID, userID)
}

func (s *authService) CreateUser(ctx context.Context, tenantID int64, req *dto.CreateUserRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUserEmail
	}

	var emp *domain.Employee
	if req.EmployeeID != nil {
		emp, err = requireEmployee(ctx, s.employees, tenantID, *req.EmployeeID, nil)
		if err != nil {
			return nil, err
		}
		linked, err := s.users.ExistsByEmployeeID(ctx, tenantID, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if linked {
			return nil, domain.ErrEmployeeAlreadyLinked
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		EmployeeID:   req.EmployeeID,
	}
	if err := s.users.Create(ctx, tenantID, user); err != nil {
		return nil, err
	}

	user.Employee = emp
	return user, nil
}

func (s *authService) issue(user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(auth.ClaimsForUser(user))
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
