package services

import (
	"context"

	"travel-storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCartAPI is a mock implementation of CartAPI.
type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) Carts(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartAPI) AddToCart(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

func (m *MockCartAPI) UpdateCartQuantity(ctx context.Context, cartID string, quantity int) error {
	args := m.Called(ctx, cartID, quantity)
	return args.Error(0)
}

func (m *MockCartAPI) RemoveCartItem(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// MockCheckoutAPI is a mock implementation of CheckoutAPI.
type MockCheckoutAPI struct {
	mock.Mock
}

func (m *MockCheckoutAPI) Carts(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCheckoutAPI) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

func (m *MockCheckoutAPI) Promos(ctx context.Context) ([]models.Promo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Promo), args.Error(1)
}

func (m *MockCheckoutAPI) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
