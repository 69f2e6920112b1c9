package services

import (
	"context"
	"encoding/json"

	"travel-storefront/internal/models"
	"travel-storefront/internal/session"
)

// CartService reconciles a locally cached cart with the authoritative
// server cart. The rules are strict:
//
//   - Load: the cached copy paints instantly, then the server list replaces
//     local state entirely (server wins).
//   - Mutations: local state changes only after the server acknowledges.
//     A failed call leaves the last known-good state and returns the error.
//   - A decrement that would reach zero becomes a remove; quantity never
//     goes negative and never sits at zero.
//
// If the session store can report external writes to the cart key, the
// service refreshes its snapshot from them, so two handles over the same
// store converge (best-effort, not transactional).
type CartService struct {
	api   CartAPI
	cache session.Session
	items []models.CartItem
}

func NewCartService(api CartAPI, cache session.Session) *CartService {
	s := &CartService{api: api, cache: cache}
	s.items = readCachedCart(cache)
	if watcher, ok := cache.(session.Watcher); ok {
		watcher.Watch(session.KeyCart, s.onCacheChange)
	}
	return s
}

// Items returns the current local snapshot.
func (s *CartService) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Subtotal is the derived display subtotal of the local snapshot.
func (s *CartService) Subtotal() float64 {
	return models.Subtotal(s.items)
}

// Load fetches the server cart. On success the server response replaces
// local state and the cache entirely; on failure the cached snapshot
// survives for display and the error is returned.
func (s *CartService) Load(ctx context.Context) ([]models.CartItem, error) {
	items, err := s.api.Carts(ctx)
	if err != nil {
		return s.Items(), err
	}
	s.replace(items)
	return s.Items(), nil
}

// Add puts one unit of an activity in the server cart, then reloads so the
// local snapshot reflects however the server merged it.
func (s *CartService) Add(ctx context.Context, activityID string) error {
	if err := s.api.AddToCart(ctx, activityID); err != nil {
		return err
	}
	_, err := s.Load(ctx)
	return err
}

// Increase bumps an item's quantity by one, server first.
func (s *CartService) Increase(ctx context.Context, itemID string) error {
	item := s.find(itemID)
	if item == nil {
		return models.ErrCartItemNotFound
	}
	return s.updateQuantity(ctx, itemID, item.Quantity+1)
}

// Decrease lowers an item's quantity by one. At quantity one the item is
// removed instead of being updated to zero.
func (s *CartService) Decrease(ctx context.Context, itemID string) error {
	item := s.find(itemID)
	if item == nil {
		return models.ErrCartItemNotFound
	}
	if item.Quantity <= 1 {
		return s.Remove(ctx, itemID)
	}
	return s.updateQuantity(ctx, itemID, item.Quantity-1)
}

// Remove deletes an item server-side, then drops it locally.
func (s *CartService) Remove(ctx context.Context, itemID string) error {
	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		return err
	}

	items := s.Items()
	next := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			next = append(next, item)
		}
	}
	s.replace(next)
	return nil
}

// Clear drops the local snapshot and cache. Used after checkout, when the
// server has already consumed the cart.
func (s *CartService) Clear() {
	s.replace(nil)
}

func (s *CartService) updateQuantity(ctx context.Context, itemID string, quantity int) error {
	if err := s.api.UpdateCartQuantity(ctx, itemID, quantity); err != nil {
		return err
	}

	items := s.Items()
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
		}
	}
	s.replace(items)
	return nil
}

func (s *CartService) find(itemID string) *models.CartItem {
	for i := range s.items {
		if s.items[i].ID == itemID {
			return &s.items[i]
		}
	}
	return nil
}

// replace installs a new snapshot and rewrites the cache.
func (s *CartService) replace(items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	s.items = items

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.cache.Set(session.KeyCart, string(raw))
}

// onCacheChange refreshes the snapshot when another handle rewrites the
// cart key. An unparsable value means an emptied cart, fail closed.
func (s *CartService) onCacheChange(value string, ok bool) {
	if !ok || value == "" {
		s.items = []models.CartItem{}
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		s.items = []models.CartItem{}
		return
	}
	s.items = items
}

func readCachedCart(cache session.Session) []models.CartItem {
	raw, ok := cache.Get(session.KeyCart)
	if !ok || raw == "" {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.CartItem{}
	}
	return items
}
