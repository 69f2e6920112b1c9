package models

import "errors"

// Common errors used throughout the application
var (
	ErrNoSession        = errors.New("no active session")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrPromoNotFound    = errors.New("promo code is not valid or has expired")
	ErrNoPaymentMethod  = errors.New("no payment method selected")
	ErrInvalidInput     = errors.New("invalid input")
)
