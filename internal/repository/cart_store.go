package repository

import (
	"context"

	"marketplace/internal/domain"
)

// CartStore keeps the buyer's cart in redis. Carts are display state, not
// reservations; checkout re-validates everything against the database.
type CartStore interface {
	Get(ctx context.Context, userID uint64) (*domain.Cart, error)
	Put(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, userID uint64) error
}
