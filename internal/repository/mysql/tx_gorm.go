package mysql

import (
	"context"

	"marketplace/internal/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repository.TxManager {
	return &txManager{db: db}
}

// WithinTransaction delegates to gorm's Transaction: commit on nil, rollback
// on error or panic. Lock waits and deadlocks surface as fn's error and roll
// the whole unit of work back.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
