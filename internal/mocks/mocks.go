package mocks

import (
	"context"

	"marketplace/internal/domain"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockTxManager struct {
	mock.Mock
}

// WithinTransaction runs fn with a nil tx handle when the mock is configured
// to succeed; the repositories under test are mocks too, so the handle is
// never dereferenced. A configured error simulates begin/commit failure and
// fn is not run.
func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) LockForUpdate(tx *gorm.DB, id uint64) (*domain.Listing, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) MarkSold(tx *gorm.DB, id uint64) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *MockListingRepository) FindByID(id uint64) (*domain.Listing, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(tx *gorm.DB, order *domain.Order) error {
	args := m.Called(tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) AddOrderItem(tx *gorm.DB, item *domain.OrderItem) error {
	args := m.Called(tx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrdersForUser(userID uint64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(userID, orderID uint64) (*domain.Order, error) {
	args := m.Called(userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Get(ctx context.Context, userID uint64) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartStore) Put(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
