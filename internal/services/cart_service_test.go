package services

import (
	"context"
	"testing"

	"marketplace/internal/domain"
	"marketplace/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartService_AddToCart(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockCartStore, *mocks.MockListingRepository)
		checkError func(*testing.T, error)
		checkCart  func(*testing.T, *domain.Cart)
	}{
		{
			name: "adds an available listing",
			setupMocks: func(carts *mocks.MockCartStore, listings *mocks.MockListingRepository) {
				listings.On("FindByID", uint64(10)).
					Return(availableListing(10, testSellerID, "desk lamp", "50.00"), nil)
				carts.On("Get", mock.Anything, testBuyerID).
					Return(&domain.Cart{UserID: testBuyerID}, nil)
				carts.On("Put", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)
			},
			checkCart: func(t *testing.T, cart *domain.Cart) {
				assert.Len(t, cart.Items, 1)
				assert.Equal(t, uint64(10), cart.Items[0].ListingID)
				assert.Equal(t, "desk lamp", cart.Items[0].Title)
				assert.True(t, cart.Items[0].Price.Equal(decimal.RequireFromString("50.00")))
				assert.Equal(t, testSellerID, cart.Items[0].SellerID)
			},
		},
		{
			name: "adding the same listing twice is a no-op",
			setupMocks: func(carts *mocks.MockCartStore, listings *mocks.MockListingRepository) {
				listings.On("FindByID", uint64(10)).
					Return(availableListing(10, testSellerID, "desk lamp", "50.00"), nil)
				carts.On("Get", mock.Anything, testBuyerID).Return(&domain.Cart{
					UserID: testBuyerID,
					Items:  []domain.CartItem{{ListingID: 10, Title: "desk lamp"}},
				}, nil)
			},
			checkCart: func(t *testing.T, cart *domain.Cart) {
				assert.Len(t, cart.Items, 1)
			},
		},
		{
			name: "rejects the buyer's own listing",
			setupMocks: func(carts *mocks.MockCartStore, listings *mocks.MockListingRepository) {
				listings.On("FindByID", uint64(10)).
					Return(availableListing(10, testBuyerID, "desk lamp", "50.00"), nil)
			},
			checkError: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrOwnListing)
			},
		},
		{
			name: "rejects a sold listing",
			setupMocks: func(carts *mocks.MockCartStore, listings *mocks.MockListingRepository) {
				listings.On("FindByID", uint64(10)).
					Return(soldListing(10, testSellerID, "desk lamp", "50.00"), nil)
			},
			checkError: func(t *testing.T, err error) {
				var unavailable *ListingUnavailableError
				assert.ErrorAs(t, err, &unavailable)
			},
		},
		{
			name: "rejects a missing listing",
			setupMocks: func(carts *mocks.MockCartStore, listings *mocks.MockListingRepository) {
				listings.On("FindByID", uint64(10)).Return(nil, nil)
			},
			checkError: func(t *testing.T, err error) {
				var notFound *ListingNotFoundError
				assert.ErrorAs(t, err, &notFound)
				assert.Equal(t, uint64(10), notFound.ListingID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartStore)
			listings := new(mocks.MockListingRepository)
			tt.setupMocks(carts, listings)

			service := NewCartService(carts, listings)
			cart, err := service.AddToCart(context.Background(), testBuyerID, 10)

			if tt.checkError != nil {
				assert.Error(t, err)
				tt.checkError(t, err)
				assert.Nil(t, cart)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cart)
				tt.checkCart(t, cart)
			}

			carts.AssertExpectations(t)
			listings.AssertExpectations(t)
		})
	}
}

func TestCartService_RemoveFromCart(t *testing.T) {
	carts := new(mocks.MockCartStore)
	listings := new(mocks.MockListingRepository)

	carts.On("Get", mock.Anything, testBuyerID).Return(&domain.Cart{
		UserID: testBuyerID,
		Items: []domain.CartItem{
			{ListingID: 10, Title: "desk lamp"},
			{ListingID: 11, Title: "office chair"},
		},
	}, nil)
	carts.On("Put", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

	service := NewCartService(carts, listings)
	cart, err := service.RemoveFromCart(context.Background(), testBuyerID, 10)

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, uint64(11), cart.Items[0].ListingID)

	carts.AssertExpectations(t)
}
