package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs fn inside one database transaction. If fn returns an error
// the transaction is rolled back and none of its effects are observable;
// otherwise it commits. This is the only transaction boundary in the service.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
