package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/services"
	"marketplace/pkg/ctxmanage"
	"marketplace/pkg/logkey"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const orderHistoryTTL = 10 * time.Second

type Handler struct {
	orders *services.OrderService
	carts  *services.CartService
	rdb    *redis.Client
}

func NewHandler(orders *services.OrderService, carts *services.CartService, rdb *redis.Client) *Handler {
	return &Handler{orders: orders, carts: carts, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/orders", h.Checkout)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/cart", h.GetCart)
	r.POST("/cart", h.AddToCart)
	r.DELETE("/cart/:listingId", h.RemoveFromCart)
}

func (h *Handler) Checkout(c *gin.Context) {
	traceID := ctxmanage.GetTraceIDOfRequest(c)
	buyerID, ok := userID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.RequestedItem{
			ListingID: item.ListingID,
			Price:     item.Price,
		})
	}

	placed, err := h.orders.PlaceOrder(c.Request.Context(), buyerID, items)
	if err != nil {
		status := checkoutStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("checkout failed",
				slog.String(logkey.TraceID, traceID),
				slog.Uint64(logkey.UserID, buyerID),
				slog.String(logkey.Error, err.Error()))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.rdb.Del(context.Background(), orderHistoryKey(buyerID))

	c.JSON(http.StatusCreated, placed)
}

// checkoutStatus maps the coordinator's error taxonomy to HTTP codes. A
// storage failure is 503: nothing committed and the client may retry the
// whole call.
func checkoutStatus(err error) int {
	var (
		notFound    *services.ListingNotFoundError
		unavailable *services.ListingUnavailableError
		selfBuy     *services.SelfPurchaseError
		storage     *services.StorageError
	)
	switch {
	case errors.Is(err, services.ErrEmptyCheckout), errors.Is(err, services.ErrDuplicateListing):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable):
		return http.StatusConflict
	case errors.As(err, &selfBuy):
		return http.StatusBadRequest
	case errors.As(err, &storage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) ListOrders(c *gin.Context) {
	buyerID, ok := userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := orderHistoryKey(buyerID)
	if b, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var cached []json.RawMessage
		if json.Unmarshal(b, &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	orders, err := h.orders.GetOrdersForUser(ctx, buyerID)
	if err != nil {
		slog.Error("failed to list orders",
			slog.String(logkey.TraceID, ctxmanage.GetTraceIDOfRequest(c)),
			slog.Uint64(logkey.UserID, buyerID),
			slog.String(logkey.Error, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}

	if data, err := json.Marshal(orders); err == nil {
		h.rdb.Set(ctx, cacheKey, data, orderHistoryTTL)
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	buyerID, ok := userID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), buyerID, orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetCart(c *gin.Context) {
	buyerID, ok := userID(c)
	if !ok {
		return
	}
	cart, err := h.carts.GetCart(c.Request.Context(), buyerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) AddToCart(c *gin.Context) {
	buyerID, ok := userID(c)
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.AddToCart(c.Request.Context(), buyerID, req.ListingID)
	if err != nil {
		var notFound *services.ListingNotFoundError
		var unavailable *services.ListingUnavailableError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &unavailable), errors.Is(err, services.ErrOwnListing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		}
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	buyerID, ok := userID(c)
	if !ok {
		return
	}
	listingID, err := strconv.ParseUint(c.Param("listingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	cart, err := h.carts.RemoveFromCart(c.Request.Context(), buyerID, listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func orderHistoryKey(userID uint64) string {
	return "orders:user:" + strconv.FormatUint(userID, 10)
}

func userID(c *gin.Context) (uint64, bool) {
	id, ok := auth.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return 0, false
	}
	return id, true
}
