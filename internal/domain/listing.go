package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
)

// Listing is a single sellable item. Quantity is always one: the listing is
// either available or sold, and sold is terminal.
type Listing struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `json:"userId" gorm:"not null;index"`
	Title       string          `json:"title" gorm:"not null;type:varchar(255)"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"not null;type:decimal(10,2)"`
	ImageURL    string          `json:"imageUrl" gorm:"type:varchar(255)"`
	Status      ListingStatus   `json:"status" gorm:"type:enum('available','sold');default:'available';index"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

func (l *Listing) Available() bool {
	return l.Status == ListingAvailable
}

// OwnedBy reports whether userID is the seller of this listing.
func (l *Listing) OwnedBy(userID uint64) bool {
	return l.UserID == userID
}
