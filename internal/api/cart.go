package api

import (
	"context"
	"net/url"

	"travel-storefront/internal/models"
)

// Carts fetches the authoritative server cart for the current session.
func (c *Client) Carts(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.get(ctx, "/carts", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds one unit of an activity; the server merges duplicates.
func (c *Client) AddToCart(ctx context.Context, activityID string) error {
	body := map[string]string{"activityId": activityID}
	return c.post(ctx, "/add-cart", body, nil)
}

// UpdateCartQuantity sets the absolute quantity of a cart item. Quantities
// of zero go through RemoveCartItem instead.
func (c *Client) UpdateCartQuantity(ctx context.Context, cartID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.post(ctx, "/update-cart/"+url.PathEscape(cartID), body, nil)
}

// RemoveCartItem deletes a cart item server-side.
func (c *Client) RemoveCartItem(ctx context.Context, cartID string) error {
	return c.delete(ctx, "/delete-cart/"+url.PathEscape(cartID))
}
