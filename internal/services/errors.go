package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCheckout    = errors.New("checkout requires at least one item")
	ErrDuplicateListing = errors.New("listing appears more than once in checkout")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOwnListing       = errors.New("cannot add your own listing to the cart")
)

// ListingNotFoundError aborts a checkout that references a listing id with
// no backing row.
type ListingNotFoundError struct {
	ListingID uint64
}

func (e *ListingNotFoundError) Error() string {
	return fmt.Sprintf("listing %d does not exist", e.ListingID)
}

// ListingUnavailableError is the expected race outcome: another transaction
// sold the listing first. The whole checkout is rolled back.
type ListingUnavailableError struct {
	ListingID uint64
	Title     string
}

func (e *ListingUnavailableError) Error() string {
	return fmt.Sprintf("listing %d (%s) is no longer available", e.ListingID, e.Title)
}

// SelfPurchaseError aborts a checkout where the buyer owns one of the
// requested listings.
type SelfPurchaseError struct {
	ListingID uint64
	Title     string
}

func (e *SelfPurchaseError) Error() string {
	return fmt.Sprintf("listing %d (%s) belongs to the buyer", e.ListingID, e.Title)
}

// StorageError wraps transaction, lock, timeout and deadlock failures from
// the store. Nothing was committed, so the whole PlaceOrder call is safe to
// retry from scratch.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// asCheckoutError passes the coordinator's own error kinds through and wraps
// anything else (commit failures, driver errors) as a StorageError.
func asCheckoutError(err error) error {
	if errors.Is(err, ErrEmptyCheckout) || errors.Is(err, ErrDuplicateListing) {
		return err
	}
	var (
		notFound    *ListingNotFoundError
		unavailable *ListingUnavailableError
		selfBuy     *SelfPurchaseError
		storage     *StorageError
	)
	if errors.As(err, &notFound) || errors.As(err, &unavailable) ||
		errors.As(err, &selfBuy) || errors.As(err, &storage) {
		return err
	}
	return &StorageError{Op: "checkout transaction", Err: err}
}
