package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{ID: "c1", Activity: Activity{Price: 100000}, Quantity: 2},
		{ID: "c2", Activity: Activity{Price: 250000}, Quantity: 1},
	}

	assert.Equal(t, 450000.0, Subtotal(items))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 0.0, Subtotal([]CartItem{}))
}

func TestCartItemUnmarshalDefaultsQuantity(t *testing.T) {
	var item CartItem
	err := json.Unmarshal([]byte(`{"id":"c1","activity":{"id":"a1","price":50000}}`), &item)
	require.NoError(t, err)

	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 50000.0, item.Activity.Price)
}

func TestCartItemUnmarshalClampsNegativeQuantity(t *testing.T) {
	var item CartItem
	err := json.Unmarshal([]byte(`{"id":"c1","quantity":-3}`), &item)
	require.NoError(t, err)

	assert.Equal(t, 0, item.Quantity)
}

func TestCartItemUnmarshalKeepsExplicitQuantity(t *testing.T) {
	var item CartItem
	err := json.Unmarshal([]byte(`{"id":"c1","quantity":4}`), &item)
	require.NoError(t, err)

	assert.Equal(t, 4, item.Quantity)
}
