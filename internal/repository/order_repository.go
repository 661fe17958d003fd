package repository

import (
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// OrderRepository is the order ledger. The tx-scoped writes must run inside
// a transaction supplied by TxManager; the reads see committed data only.
type OrderRepository interface {
	CreateOrder(tx *gorm.DB, order *domain.Order) error
	AddOrderItem(tx *gorm.DB, item *domain.OrderItem) error
	ListOrdersForUser(userID uint64) ([]domain.Order, error)
	FindOrderByID(userID, orderID uint64) (*domain.Order, error)
}
