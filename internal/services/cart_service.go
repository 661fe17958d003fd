package services

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/repository"
)

// CartService manages the redis-backed cart. A cart entry reserves nothing:
// the listing can still be sold to someone else, and checkout re-validates
// every item under lock.
type CartService struct {
	carts    repository.CartStore
	listings repository.ListingRepository
}

func NewCartService(carts repository.CartStore, listings repository.ListingRepository) *CartService {
	return &CartService{carts: carts, listings: listings}
}

func (s *CartService) GetCart(ctx context.Context, userID uint64) (*domain.Cart, error) {
	return s.carts.Get(ctx, userID)
}

// AddToCart rejects listings that do not exist, are already sold, or belong
// to the buyer. Adding the same listing twice is a no-op; quantity is
// always one.
func (s *CartService) AddToCart(ctx context.Context, userID, listingID uint64) (*domain.Cart, error) {
	listing, err := s.listings.FindByID(listingID)
	if err != nil {
		return nil, &StorageError{Op: "find listing", Err: err}
	}
	if listing == nil {
		return nil, &ListingNotFoundError{ListingID: listingID}
	}
	if listing.OwnedBy(userID) {
		return nil, ErrOwnListing
	}
	if !listing.Available() {
		return nil, &ListingUnavailableError{ListingID: listing.ID, Title: listing.Title}
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range cart.Items {
		if item.ListingID == listingID {
			return cart, nil
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{
		ListingID: listing.ID,
		Title:     listing.Title,
		Price:     listing.Price,
		ImageURL:  listing.ImageURL,
		SellerID:  listing.UserID,
	})
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, listingID uint64) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ListingID != listingID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
