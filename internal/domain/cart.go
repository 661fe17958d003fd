package domain

import "github.com/shopspring/decimal"

// Cart is the buyer's staging area. It lives in redis only; nothing in it is
// reserved. Availability and price are re-checked under lock at checkout.
type Cart struct {
	UserID uint64     `json:"userId"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ListingID uint64          `json:"listingId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	SellerID  uint64          `json:"sellerId"`
}
