package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"marketplace/internal/domain"
	rabbit "marketplace/internal/infra/rabbitmq"
	"marketplace/internal/repository"
	"marketplace/pkg/logkey"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequestedItem is one entry of the buyer's checkout request. Price is the
// client's stale display hint; the total is always computed from the price
// read under lock, so a tampered or outdated value changes nothing.
type RequestedItem struct {
	ListingID uint64
	Price     decimal.Decimal
}

type PlacedItem struct {
	ListingID uint64          `json:"listingId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
}

type PlacedOrder struct {
	OrderID     uint64          `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []PlacedItem    `json:"items"`
}

// OrderService coordinates order placement. It is the sole writer of the
// listing sold transition and of order rows; correctness rests on the
// database transaction plus the exclusive row locks taken per listing, not
// on any in-process synchronization.
type OrderService struct {
	txm       repository.TxManager
	listings  repository.ListingRepository
	orders    repository.OrderRepository
	carts     repository.CartStore
	publisher rabbit.PublisherInterface
}

func NewOrderService(
	txm repository.TxManager,
	listings repository.ListingRepository,
	orders repository.OrderRepository,
	carts repository.CartStore,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		txm:       txm,
		listings:  listings,
		orders:    orders,
		carts:     carts,
		publisher: publisher,
	}
}

// PlaceOrder turns the buyer's item selection into a durable order.
//
// Everything runs in one transaction: each listing is read with an exclusive
// row lock, validated, and the order, its items and the sold transitions are
// committed together or not at all. Concurrent buyers racing for the same
// listing serialize on the row lock; whoever commits first wins and every
// later contender sees status=sold and gets ListingUnavailableError.
//
// Listings are locked in ascending id order regardless of the submitted
// order, so two checkouts with overlapping sets can never deadlock on each
// other. The response breakdown keeps the buyer's submitted order.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID uint64, items []RequestedItem) (*PlacedOrder, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCheckout
	}

	lockOrder := make([]uint64, 0, len(items))
	seen := make(map[uint64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ListingID]; dup {
			return nil, ErrDuplicateListing
		}
		seen[item.ListingID] = struct{}{}
		lockOrder = append(lockOrder, item.ListingID)
	}
	sort.Slice(lockOrder, func(i, j int) bool { return lockOrder[i] < lockOrder[j] })

	var placed *PlacedOrder
	err := s.txm.WithinTransaction(ctx, func(tx *gorm.DB) error {
		locked := make(map[uint64]*domain.Listing, len(lockOrder))
		for _, id := range lockOrder {
			listing, err := s.listings.LockForUpdate(tx, id)
			if err != nil {
				return &StorageError{Op: "lock listing", Err: err}
			}
			if listing == nil {
				return &ListingNotFoundError{ListingID: id}
			}
			if !listing.Available() {
				return &ListingUnavailableError{ListingID: id, Title: listing.Title}
			}
			if listing.OwnedBy(buyerID) {
				return &SelfPurchaseError{ListingID: id, Title: listing.Title}
			}
			locked[id] = listing
		}

		total := decimal.Zero
		for _, id := range lockOrder {
			total = total.Add(locked[id].Price)
		}

		order := &domain.Order{
			UserID:      buyerID,
			TotalAmount: total,
			Status:      domain.StatusConfirmed,
		}
		if err := s.orders.CreateOrder(tx, order); err != nil {
			return &StorageError{Op: "create order", Err: err}
		}

		result := &PlacedOrder{
			OrderID:     order.ID,
			TotalAmount: total,
			Items:       make([]PlacedItem, 0, len(items)),
		}
		for _, item := range items {
			listing := locked[item.ListingID]
			orderItem := &domain.OrderItem{
				OrderID:   order.ID,
				ListingID: listing.ID,
				Price:     listing.Price,
			}
			if err := s.orders.AddOrderItem(tx, orderItem); err != nil {
				return &StorageError{Op: "add order item", Err: err}
			}
			if err := s.listings.MarkSold(tx, listing.ID); err != nil {
				return &StorageError{Op: "mark listing sold", Err: err}
			}
			result.Items = append(result.Items, PlacedItem{
				ListingID: listing.ID,
				Title:     listing.Title,
				Price:     listing.Price,
			})
		}

		placed = result
		return nil
	})
	if err != nil {
		return nil, asCheckoutError(err)
	}

	go s.afterCheckout(context.Background(), buyerID, placed)

	return placed, nil
}

// afterCheckout runs the post-commit side effects: clear the buyer's cart
// and publish the integration event. The order is already durable, so
// failures here are logged and swallowed.
func (s *OrderService) afterCheckout(ctx context.Context, buyerID uint64, placed *PlacedOrder) {
	if s.carts != nil {
		if err := s.carts.Clear(ctx, buyerID); err != nil {
			slog.Error("failed to clear cart after checkout",
				slog.Uint64(logkey.UserID, buyerID),
				slog.String(logkey.Error, err.Error()))
		}
	}

	if s.publisher == nil {
		return
	}
	listingIDs := make([]uint64, 0, len(placed.Items))
	for _, item := range placed.Items {
		listingIDs = append(listingIDs, item.ListingID)
	}
	event := domain.OrderPlacedEvent{
		OrderID:     placed.OrderID,
		BuyerID:     buyerID,
		ListingIDs:  listingIDs,
		TotalAmount: placed.TotalAmount,
		CreatedAt:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.placed", event); err != nil {
		slog.Error("failed to publish order.placed",
			slog.Uint64(logkey.OrderID, placed.OrderID),
			slog.String(logkey.Error, err.Error()))
	}
}

// GetOrdersForUser returns the buyer's committed orders, newest first, with
// items and their listings attached. Reads only committed data; no locks.
func (s *OrderService) GetOrdersForUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	orders, err := s.orders.ListOrdersForUser(userID)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID uint64) (*domain.Order, error) {
	order, err := s.orders.FindOrderByID(userID, orderID)
	if err != nil {
		return nil, &StorageError{Op: "find order", Err: err}
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
