package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TransactionStatus values reported by the upstream API.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSuccess   TransactionStatus = "success"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// Transaction is created and owned by the upstream API; the client never
// computes its total authoritatively.
type Transaction struct {
	ID              string            `json:"id"`
	InvoiceID       string            `json:"invoiceId"`
	Status          TransactionStatus `json:"status"`
	TotalAmount     float64           `json:"totalAmount"`
	ProofPaymentURL string            `json:"proofPaymentUrl"`
	Carts           []CartItem        `json:"carts"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	OrderDate       time.Time         `json:"orderDate"`
	ExpiredDate     time.Time         `json:"expiredDate"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// IsPending reports whether the transaction can still be cancelled or paid.
func (t *Transaction) IsPending() bool {
	return strings.EqualFold(string(t.Status), string(TransactionPending))
}

// CreateTransactionRequest is the payload for the upstream create endpoint.
type CreateTransactionRequest struct {
	CartIDs         []string `json:"cartIds"`
	PaymentMethodID string   `json:"paymentMethodId"`
	PromoCode       string   `json:"promoCode,omitempty"`
}

// TransactionTotals is the display summary cached per transaction after a
// successful checkout. The server transaction record remains the source of
// truth; these exist only so the history page can show the promo breakdown.
type TransactionTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// TotalsFor derives the display totals for a subtotal with an optional
// applied promo. The payable total never goes below zero.
func TotalsFor(subtotal float64, promo *Promo) TransactionTotals {
	var discount float64
	if promo != nil {
		discount = promo.PromoDiscountPrice
	}
	return TransactionTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    math.Max(subtotal-discount, 0),
	}
}

// FormatRupiah renders an amount the way the storefront displays prices.
func FormatRupiah(amount float64) string {
	whole := int64(math.Round(amount))
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return sign + "Rp " + strings.Join(parts, ".")
}
