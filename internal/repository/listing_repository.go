package repository

import (
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// ListingRepository is a thin typed accessor over listing rows. It holds no
// locking policy of its own: LockForUpdate maps to the database's row lock
// and the checkout coordinator decides what to do with the locked row.
type ListingRepository interface {
	// LockForUpdate reads a listing with an exclusive row lock on the
	// caller's transaction. Returns (nil, nil) when no such listing exists.
	LockForUpdate(tx *gorm.DB, id uint64) (*domain.Listing, error)
	// MarkSold transitions a listing to sold. It errors when the listing is
	// not currently available, so a missed precondition can never slip
	// through silently.
	MarkSold(tx *gorm.DB, id uint64) error
	FindByID(id uint64) (*domain.Listing, error)
}
