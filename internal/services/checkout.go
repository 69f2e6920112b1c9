package services

import (
	"context"

	"travel-storefront/internal/models"
)

// CheckoutService assembles the checkout page data and confirms payment.
// Pricing authority stays upstream; the promo check here is the UX-level
// validation the storefront shows before the API has its final say.
type CheckoutService struct {
	api    CheckoutAPI
	totals *TotalsCache
}

func NewCheckoutService(api CheckoutAPI, totals *TotalsCache) *CheckoutService {
	return &CheckoutService{api: api, totals: totals}
}

// Summary is everything the checkout page renders.
type Summary struct {
	Items          []models.CartItem
	PaymentMethods []models.PaymentMethod
	Promos         []models.Promo
	Subtotal       float64
}

// Summary loads the cart, payment methods and published promos.
func (s *CheckoutService) Summary(ctx context.Context) (*Summary, error) {
	items, err := s.api.Carts(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := s.api.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	promos, err := s.api.Promos(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Items:          items,
		PaymentMethods: methods,
		Promos:         promos,
		Subtotal:       models.Subtotal(items),
	}, nil
}

// ApplyPromo resolves a code against the published promo list and checks it
// against the subtotal. A subtotal below the promo's minimum-claim price is
// rejected with an explicit minimum-not-met error and no discount.
func (s *CheckoutService) ApplyPromo(promos []models.Promo, code string, subtotal float64) (*models.Promo, error) {
	promo, err := models.FindPromo(promos, code)
	if err != nil {
		return nil, err
	}
	if err := promo.Validate(subtotal); err != nil {
		return nil, err
	}
	return promo, nil
}

// ConfirmRequest is a validated confirm-payment submission.
type ConfirmRequest struct {
	CartIDs         []string
	PaymentMethodID string
	PromoCode       string
}

// Confirm creates the transaction upstream and caches its display totals.
// The promo is re-validated against the live cart right before creating.
func (s *CheckoutService) Confirm(ctx context.Context, req ConfirmRequest) (*models.Transaction, error) {
	if len(req.CartIDs) == 0 {
		return nil, models.ErrEmptyCart
	}
	if req.PaymentMethodID == "" {
		return nil, models.ErrNoPaymentMethod
	}

	items, err := s.api.Carts(ctx)
	if err != nil {
		return nil, err
	}
	selected := filterByIDs(items, req.CartIDs)
	if len(selected) == 0 {
		return nil, models.ErrEmptyCart
	}
	subtotal := models.Subtotal(selected)

	var promo *models.Promo
	if req.PromoCode != "" {
		promos, err := s.api.Promos(ctx)
		if err != nil {
			return nil, err
		}
		promo, err = s.ApplyPromo(promos, req.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.api.CreateTransaction(ctx, models.CreateTransactionRequest{
		CartIDs:         req.CartIDs,
		PaymentMethodID: req.PaymentMethodID,
		PromoCode:       req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	if s.totals != nil {
		s.totals.Save(tx.ID, models.TotalsFor(subtotal, promo))
	}
	return tx, nil
}

func filterByIDs(items []models.CartItem, ids []string) []models.CartItem {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var selected []models.CartItem
	for _, item := range items {
		if want[item.ID] {
			selected = append(selected, item)
		}
	}
	return selected
}
