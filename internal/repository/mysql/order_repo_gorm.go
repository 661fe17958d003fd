package mysql

import (
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateOrder(tx *gorm.DB, order *domain.Order) error {
	if err := tx.Create(order).Error; err != nil {
		return err
	}
	if order.ID == 0 {
		return errors.New("order insert did not assign an id")
	}
	return nil
}

func (r *orderRepo) AddOrderItem(tx *gorm.DB, item *domain.OrderItem) error {
	return tx.Create(item).Error
}

func (r *orderRepo) ListOrdersForUser(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Listing").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindOrderByID(userID, orderID uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Listing").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
