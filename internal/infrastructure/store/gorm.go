package store

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore reaches the same tables over a direct Postgres connection.
// Mutations use RETURNING so callers see the affected rows exactly as they
// would from the REST API.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Select(ctx context.Context, table string, q Query, dest interface{}) error {
	return s.scoped(ctx, table, q, true).Find(dest).Error
}

func (s *GormStore) Insert(ctx context.Context, table string, row interface{}, dest interface{}) error {
	if err := s.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return err
	}
	return appendRow(dest, row)
}

func (s *GormStore) Update(ctx context.Context, table string, q Query, values map[string]interface{}, dest interface{}) error {
	return s.scoped(ctx, table, q, false).
		Model(dest).
		Clauses(clause.Returning{}).
		Updates(values).Error
}

func (s *GormStore) Delete(ctx context.Context, table string, q Query, dest interface{}) error {
	return s.scoped(ctx, table, q, false).
		Clauses(clause.Returning{}).
		Delete(dest).Error
}

func (s *GormStore) scoped(ctx context.Context, table string, q Query, ordered bool) *gorm.DB {
	tx := s.db.WithContext(ctx).Table(table)
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}
	if ordered {
		for _, o := range q.Order {
			tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Descending})
		}
	}
	return tx
}

// appendRow appends *row to the slice dest points at.
func appendRow(dest interface{}, row interface{}) error {
	slice := reflect.ValueOf(dest)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: dest must be a pointer to a slice, got %T", dest)
	}
	value := reflect.ValueOf(row)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	elem := slice.Elem()
	if !value.Type().AssignableTo(elem.Type().Elem()) {
		return fmt.Errorf("store: cannot append %T to %T", row, dest)
	}
	elem.Set(reflect.Append(elem, value))
	return nil
}
