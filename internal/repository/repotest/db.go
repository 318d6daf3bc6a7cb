// Package repotest поднимает in-memory SQLite с актуальной схемой для тестов.
package repotest

import (
	"testing"

	"github.com/hrms-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models - все таблицы приложения
func Models() []any {
	return []any{
		&domain.Tenant{},
		&domain.Employee{},
		&domain.User{},
		&domain.Goal{},
		&domain.Review{},
		&domain.LeaveRequest{},
		&domain.Timesheet{},
		&domain.Announcement{},
		&domain.Recognition{},
		&domain.OnboardingTask{},
		&domain.Document{},
	}
}

// NewDB открывает отдельную базу на каждый тест
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// одно соединение - одна in-memory база
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	// тот же индекс, что и в миграции postgres
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_tenant_email ON employees (tenant_id, lower(email))",
	).Error)
	return db
}

// SeedTenant создаёт арендатора с указанным именем
func SeedTenant(t testing.TB, db *gorm.DB, name string) *domain.Tenant {
	t.Helper()

	tenant := &domain.Tenant{Name: name, Status: domain.TenantStatusActive}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

// SeedEmployee создаёт активного сотрудника арендатора
func SeedEmployee(t testing.TB, db *gorm.DB, tenantID int64, name string) *domain.Employee {
	t.Helper()

	emp := &domain.Employee{
		Name:       name,
		Email:      name + "@example.com",
		Department: "Engineering",
		Status:     domain.EmployeeStatusActive,
	}
	emp.TenantID = tenantID
	require.NoError(t, db.Create(emp).Error)
	return emp
}
