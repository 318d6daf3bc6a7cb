package dto

import (
	"time"

	"github.com/hrms-api/internal/domain"
)

// SetupTenantAdminRequest - регистрация арендатора вместе с администратором
type SetupTenantAdminRequest struct {
	TenantName    string `json:"tenantName" validate:"required,min=1,max=200"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email,max=320"`
	AdminEmail    string `json:"adminEmail" validate:"required,email,max=320"`
	AdminPassword string `json:"adminPassword" validate:"required,min=1,max=72"`
	AdminName     string `json:"adminName" validate:"omitempty,max=200"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest - создание учётной записи в арендаторе текущего пользователя
type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email,max=320"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	Role       string `json:"role" validate:"required,oneof=admin hr employee"`
	EmployeeID *int64 `json:"employeeId" validate:"omitempty,min=1"`
}

// AuthResponse - выданный токен и профиль пользователя
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}
