package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"travel-storefront/internal/models"
	"travel-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartItems(qty int) []models.CartItem {
	return []models.CartItem{
		{ID: "c1", Activity: models.Activity{ID: "a1", Price: 100000}, Quantity: qty},
	}
}

func TestCartLoadServerWins(t *testing.T) {
	store := session.NewMemoryStore("")
	stale, _ := json.Marshal(cartItems(5))
	require.NoError(t, store.Set(session.KeyCart, string(stale)))

	api := new(MockCartAPI)
	api.On("Carts", mock.Anything).Return(cartItems(2), nil)

	svc := NewCartService(api, store)
	items, err := svc.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity, "server copy replaces the cached one")
	assert.Equal(t, 200000.0, svc.Subtotal())

	// The cache was rewritten too.
	raw, ok := store.Get(session.KeyCart)
	require.True(t, ok)
	var cached []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, 2, cached[0].Quantity)
}

func TestCartLoadFailureKeepsCachedSnapshot(t *testing.T) {
	store := session.NewMemoryStore("")
	cached, _ := json.Marshal(cartItems(3))
	require.NoError(t, store.Set(session.KeyCart, string(cached)))

	api := new(MockCartAPI)
	api.On("Carts", mock.Anything).Return(nil, errors.New("upstream down"))

	svc := NewCartService(api, store)
	items, err := svc.Load(context.Background())

	require.Error(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity, "cached snapshot survives a failed load")
}

func TestCartDecreaseAtOneRemoves(t *testing.T) {
	store := session.NewMemoryStore("")
	cached, _ := json.Marshal(cartItems(1))
	require.NoError(t, store.Set(session.KeyCart, string(cached)))

	api := new(MockCartAPI)
	api.On("RemoveCartItem", mock.Anything, "c1").Return(nil)

	svc := NewCartService(api, store)
	require.NoError(t, svc.Decrease(context.Background(), "c1"))

	assert.Empty(t, svc.Items())
	api.AssertNotCalled(t, "UpdateCartQuantity", mock.Anything, mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestCartDecreaseAboveOneUpdates(t *testing.T) {
	store := session.NewMemoryStore("")
	cached, _ := json.Marshal(cartItems(3))
	require.NoError(t, store.Set(session.KeyCart, string(cached)))

	api := new(MockCartAPI)
	api.On("UpdateCartQuantity", mock.Anything, "c1", 2).Return(nil)

	svc := NewCartService(api, store)
	require.NoError(t, svc.Decrease(context.Background(), "c1"))

	assert.Equal(t, 2, svc.Items()[0].Quantity)
	api.AssertExpectations(t)
}

func TestCartIncrease(t *testing.T) {
	store := session.NewMemoryStore("")
	cached, _ := json.Marshal(cartItems(2))
	require.NoError(t, store.Set(session.KeyCart, string(cached)))

	api := new(MockCartAPI)
	api.On("UpdateCartQuantity", mock.Anything, "c1", 3).Return(nil)

	svc := NewCartService(api, store)
	require.NoError(t, svc.Increase(context.Background(), "c1"))

	assert.Equal(t, 3, svc.Items()[0].Quantity)
}

func TestCartFailedMutationLeavesState(t *testing.T) {
	store := session.NewMemoryStore("")
	cached, _ := json.Marshal(cartItems(2))
	require.NoError(t, store.Set(session.KeyCart, string(cached)))

	api := new(MockCartAPI)
	api.On("UpdateCartQuantity", mock.Anything, "c1", 3).Return(errors.New("conflict"))

	svc := NewCartService(api, store)
	err := svc.Increase(context.Background(), "c1")

	require.Error(t, err)
	assert.Equal(t, 2, svc.Items()[0].Quantity, "local state untouched after server rejection")
}

func TestCartMutateUnknownItem(t *testing.T) {
	api := new(MockCartAPI)
	svc := NewCartService(api, session.NewMemoryStore(""))

	assert.ErrorIs(t, svc.Increase(context.Background(), "missing"), models.ErrCartItemNotFound)
	assert.ErrorIs(t, svc.Decrease(context.Background(), "missing"), models.ErrCartItemNotFound)
}

func TestCartAddReloadsFromServer(t *testing.T) {
	store := session.NewMemoryStore("")
	api := new(MockCartAPI)
	api.On("AddToCart", mock.Anything, "a1").Return(nil)
	api.On("Carts", mock.Anything).Return(cartItems(1), nil)

	svc := NewCartService(api, store)
	require.NoError(t, svc.Add(context.Background(), "a1"))

	require.Len(t, svc.Items(), 1)
	api.AssertExpectations(t)
}

func TestCartConvergesAcrossHandles(t *testing.T) {
	store := session.NewMemoryStore("")
	apiA := new(MockCartAPI)
	apiA.On("Carts", mock.Anything).Return(cartItems(2), nil)
	apiB := new(MockCartAPI)

	first := NewCartService(apiA, store)
	second := NewCartService(apiB, store)

	_, err := first.Load(context.Background())
	require.NoError(t, err)

	// The second handle saw the cache write through its watcher.
	require.Len(t, second.Items(), 1)
	assert.Equal(t, 2, second.Items()[0].Quantity)
}

func TestCartWatchFailsClosedOnBadCache(t *testing.T) {
	store := session.NewMemoryStore("")
	svc := NewCartService(new(MockCartAPI), store)

	require.NoError(t, store.Set(session.KeyCart, "{not json"))

	assert.Empty(t, svc.Items(), "unparsable cache reads as an empty cart")
}
