package uow

import (
	"context"

	"gorm.io/gorm"
)

type (
	// UnitOfWork groups repository writes into a single transaction.
	// Repositories are rebound to the transaction handle via WithTx.
	UnitOfWork interface {
		Do(ctx context.Context, fn func(tx *gorm.DB) error) error
	}

	unitOfWork struct {
		db *gorm.DB
	}
)

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}
