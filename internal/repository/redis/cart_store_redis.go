package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/go-redis/redis/v8"
)

const cartTTL = 24 * time.Hour

type cartStore struct {
	rdb *redis.Client
}

func NewCartStore(rdb *redis.Client) repository.CartStore {
	return &cartStore{rdb: rdb}
}

func cartKey(userID uint64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *cartStore) Get(ctx context.Context, userID uint64) (*domain.Cart, error) {
	b, err := s.rdb.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.Cart{UserID: userID}, nil
		}
		return nil, fmt.Errorf("cart get: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(b, &cart); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return &cart, nil
}

func (s *cartStore) Put(ctx context.Context, cart *domain.Cart) error {
	b, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(cart.UserID), b, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart set: %w", err)
	}
	return nil
}

func (s *cartStore) Clear(ctx context.Context, userID uint64) error {
	return s.rdb.Del(ctx, cartKey(userID)).Err()
}
