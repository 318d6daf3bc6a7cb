package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hrms-api/internal/domain"
)

// employeeLookup - минимальный доступ к сотрудникам для проверки ссылок
type employeeLookup interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Employee, error)
}

// requireEmployee проверяет, что сотрудник существует у арендатора.
// notFound подменяет ошибку, когда ссылка называется иначе (например, reviewer).
func requireEmployee(ctx context.Context, employees employeeLookup, tenantID, id int64, notFound error) (*domain.Employee, error) {
	emp, err := employees.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) && notFound != nil {
			return nil, notFound
		}
		return nil, err
	}
	return emp, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
