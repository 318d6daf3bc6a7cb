package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tenanted - модель, принадлежащая арендатору
type Tenanted interface {
	SetTenantID(tenantID int64)
}

// TenantScope ограничивает запрос строками арендатора.
// Все запросы к данным арендатора проходят только через него.
func TenantScope(tenantID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "tenant_id"},
			Value:  tenantID,
		})
	}
}

// tenantStore реализует общие CRUD-операции над моделью арендатора
type tenantStore[T any, PT interface {
	*T
	Tenanted
}] struct {
	db       *gorm.DB
	notFound error
	// conflict возвращается вместо нарушения уникального индекса
	conflict error
}

func newTenantStore[T any, PT interface {
	*T
	Tenanted
}](db *gorm.DB, notFound error) tenantStore[T, PT] {
	return tenantStore[T, PT]{db: db, notFound: notFound}
}

func (s tenantStore[T, PT]) withConflict(conflict error) tenantStore[T, PT] {
	s.conflict = conflict
	return s
}

// translate заменяет нарушение уникальности бизнес-ошибкой хранилища
func (s tenantStore[T, PT]) translate(err error) error {
	if s.conflict != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.conflict
	}
	return err
}

func (s tenantStore[T, PT]) scoped(ctx context.Context, tenantID int64) *gorm.DB {
	return s.db.WithContext(ctx).Scopes(TenantScope(tenantID))
}

func (s tenantStore[T, PT]) Create(ctx context.Context, tenantID int64, rec *T) error {
	PT(rec).SetTenantID(tenantID)
	return s.translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error)
}

func (s tenantStore[T, PT]) GetByID(ctx context.Context, tenantID, id int64) (*T, error) {
	return s.get(ctx, tenantID, id)
}

func (s tenantStore[T, PT]) get(ctx context.Context, tenantID, id int64, preloads ...string) (*T, error) {
	query := s.scoped(ctx, tenantID)
	for _, name := range preloads {
		query = query.Preload(name)
	}

	var rec T
	err := query.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, err
	}
	return &rec, nil
}

// Update сохраняет все поля записи, кроме ключа, арендатора и даты создания
func (s tenantStore[T, PT]) Update(ctx context.Context, tenantID int64, rec *T) error {
	PT(rec).SetTenantID(tenantID)
	result := s.scoped(ctx, tenantID).
		Model(rec).
		Select("*").
		Omit("id", "tenant_id", "created_at", clause.Associations).
		Updates(rec)
	if result.Error != nil {
		return s.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

func (s tenantStore[T, PT]) Delete(ctx context.Context, tenantID, id int64) error {
	result := s.scoped(ctx, tenantID).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.notFound
	}
	return nil
}

func (s tenantStore[T, PT]) list(ctx context.Context, tenantID int64, build func(*gorm.DB) *gorm.DB) ([]T, error) {
	query := s.scoped(ctx, tenantID)
	if build != nil {
		query = build(query)
	}

	records := make([]T, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s tenantStore[T, PT]) count(ctx context.Context, tenantID int64, build func(*gorm.DB) *gorm.DB) (int64, error) {
	query := s.scoped(ctx, tenantID).Model(new(T))
	if build != nil {
		query = build(query)
	}

	var n int64
	err := query.Count(&n).Error
	return n, err
}
