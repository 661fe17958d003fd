package http

import "github.com/shopspring/decimal"

// CheckoutItem mirrors what the client's cart believes about a listing.
// Price is display-only; the server recomputes the total from locked rows.
type CheckoutItem struct {
	ListingID uint64          `json:"listingId" binding:"required"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" binding:"required"`
}

type AddToCartRequest struct {
	ListingID uint64 `json:"listingId" binding:"required"`
}
