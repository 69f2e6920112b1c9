package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{250000, "Rp 250.000"},
		{1000000, "Rp 1.000.000"},
		{1234567, "Rp 1.234.567"},
		{-50000, "-Rp 50.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount))
	}
}

func TestTotalsFor(t *testing.T) {
	promo := &Promo{PromoDiscountPrice: 100000}

	totals := TotalsFor(450000, promo)
	assert.Equal(t, 450000.0, totals.Subtotal)
	assert.Equal(t, 100000.0, totals.Discount)
	assert.Equal(t, 350000.0, totals.Total)
}

func TestTotalsForNoPromo(t *testing.T) {
	totals := TotalsFor(450000, nil)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 450000.0, totals.Total)
}

func TestTotalsForNeverNegative(t *testing.T) {
	promo := &Promo{PromoDiscountPrice: 600000}

	totals := TotalsFor(450000, promo)
	assert.Equal(t, 0.0, totals.Total)
}

func TestTransactionIsPending(t *testing.T) {
	assert.True(t, (&Transaction{Status: "pending"}).IsPending())
	assert.True(t, (&Transaction{Status: "Pending"}).IsPending())
	assert.False(t, (&Transaction{Status: TransactionSuccess}).IsPending())
	assert.False(t, (&Transaction{Status: TransactionCancelled}).IsPending())
}

func TestActivityUnmarshalImageDrift(t *testing.T) {
	var single Activity
	err := json.Unmarshal([]byte(`{"id":"a1","imageUrl":"https://img/one.jpg"}`), &single)
	require.NoError(t, err)
	assert.Equal(t, "https://img/one.jpg", single.ImageURL)

	var list Activity
	err = json.Unmarshal([]byte(`{"id":"a1","imageUrls":["https://img/first.jpg","https://img/second.jpg"]}`), &list)
	require.NoError(t, err)
	assert.Equal(t, "https://img/first.jpg", list.ImageURL)
}
