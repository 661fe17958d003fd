package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderPlacedEvent struct {
	OrderID     uint64          `json:"orderId"`
	BuyerID     uint64          `json:"buyerId"`
	ListingIDs  []uint64        `json:"listingIds"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
