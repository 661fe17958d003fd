package services

import (
	"marketplace/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

func availableListing(id, sellerID uint64, title, price string) *domain.Listing {
	return &domain.Listing{
		ID:        id,
		UserID:    sellerID,
		Title:     title,
		Price:     decimal.RequireFromString(price),
		Status:    domain.ListingAvailable,
		CreatedAt: time.Now(),
	}
}

func soldListing(id, sellerID uint64, title, price string) *domain.Listing {
	l := availableListing(id, sellerID, title, price)
	l.Status = domain.ListingSold
	return l
}

const (
	testBuyerID  = uint64(1)
	testSellerID = uint64(2)
)
