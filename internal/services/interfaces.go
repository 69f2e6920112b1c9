package services

import (
	"context"

	"travel-storefront/internal/models"
)

// CartAPI is the slice of the upstream client the cart service needs.
type CartAPI interface {
	Carts(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, activityID string) error
	UpdateCartQuantity(ctx context.Context, cartID string, quantity int) error
	RemoveCartItem(ctx context.Context, cartID string) error
}

// CheckoutAPI is the slice of the upstream client checkout needs.
type CheckoutAPI interface {
	Carts(ctx context.Context) ([]models.CartItem, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	Promos(ctx context.Context) ([]models.Promo, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
}
