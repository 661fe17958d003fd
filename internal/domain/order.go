package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
)

// Order is one successful checkout. It is written exactly once, in the same
// transaction that flips its listings to sold, and never mutated afterwards.
type Order struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `json:"userId" gorm:"not null;index"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"not null;type:decimal(10,2)"`
	Status      OrderStatus     `json:"status" gorm:"type:enum('confirmed');default:'confirmed'"`
	Items       []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

// OrderItem captures the price at purchase time. Listing.Price may change
// later; the snapshot here is the contract of sale.
type OrderItem struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"orderId" gorm:"not null;uniqueIndex:idx_order_listing"`
	ListingID uint64          `json:"listingId" gorm:"not null;uniqueIndex:idx_order_listing"`
	Price     decimal.Decimal `json:"price" gorm:"not null;type:decimal(10,2)"`
	Listing   *Listing        `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}
