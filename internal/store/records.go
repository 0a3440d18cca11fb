package store

import (
	"context"
)

// Key selects the rows removed by DeleteOne. Implementations return a
// predicate written in code, with every value passed as an argument.
type Key interface {
	Predicate() (query string, args []any)
}

// Records is the record access contract for one table. Every call is a
// single statement committed on return.
type Records[T any, K Key] struct {
	db    *DB
	table Table
}

func NewRecords[T any, K Key](db *DB, table Table) *Records[T, K] {
	return &Records[T, K]{db: db, table: table}
}

// Insert stores row. A primary key, unique, foreign key, check or not null
// violation comes back as an integrity AppError.
func (r *Records[T, K]) Insert(ctx context.Context, row *T) error {
	err := r.db.Gorm.WithContext(ctx).Table(string(r.table)).Create(row).Error
	return translate(err, r.table)
}

// ListAll returns every row in storage order. Callers must not rely on it.
func (r *Records[T, K]) ListAll(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.db.Gorm.WithContext(ctx).Table(string(r.table)).Find(&rows).Error; err != nil {
		return nil, translate(err, r.table)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// DeleteOne removes the rows matching key and reports how many went away.
// Cascades declared in the schema run as part of the same statement.
func (r *Records[T, K]) DeleteOne(ctx context.Context, key K) (int64, error) {
	query, args := key.Predicate()
	res := r.db.Gorm.WithContext(ctx).Table(string(r.table)).Where(query, args...).Delete(new(T))
	if res.Error != nil {
		return 0, translate(res.Error, r.table)
	}
	return res.RowsAffected, nil
}

func (r *Records[T, K]) DeleteAll(ctx context.Context) error {
	return r.db.DeleteAll(ctx, r.table)
}

// Keys lists the primary keys of a referenced table, see DB.Keys.
func (r *Records[T, K]) Keys(ctx context.Context) ([]string, error) {
	return r.db.Keys(ctx, r.table)
}
