package models

import "encoding/json"

// CartItem is one line of the shopping cart. The server-held cart is
// authoritative; a local copy may exist only as a cache for instant paint.
type CartItem struct {
	ID       string   `json:"id"`
	Activity Activity `json:"activity"`
	Quantity int      `json:"quantity"`
}

// UnmarshalJSON normalizes an upstream cart entry: a missing quantity means
// one, and a negative quantity is clamped to zero (quantity is never < 0).
func (c *CartItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       string   `json:"id"`
		Activity Activity `json:"activity"`
		Quantity *int     `json:"quantity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Activity = raw.Activity
	switch {
	case raw.Quantity == nil:
		c.Quantity = 1
	case *raw.Quantity < 0:
		c.Quantity = 0
	default:
		c.Quantity = *raw.Quantity
	}
	return nil
}

// Subtotal is the display subtotal of a cart: sum of activity price times
// quantity. It is recomputed for every render and never sent to the server
// as an authoritative total.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Activity.Price * float64(item.Quantity)
	}
	return sum
}
