package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dzhusipov/fleet-core/internal/dto"
)

// ErrNotFound is returned by every repository when a row does not exist.
// Services map it to 404.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// RunTx runs fn inside a transaction. A nil db short-circuits to fn(nil),
// which lets service unit tests run against stub repositories without a
// database.
func RunTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func paginate(q dto.PageQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.PageSize)
	}
}
