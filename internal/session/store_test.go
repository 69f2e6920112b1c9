package session

import (
	"testing"

	"travel-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePrefixedReads(t *testing.T) {
	store := NewMemoryStore("TRAVELAPP")

	require.NoError(t, store.Set("token", "abc123"))

	v, ok := store.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)
}

func TestMemoryStoreRawKeyFallback(t *testing.T) {
	store := NewMemoryStore("TRAVELAPP")
	store.SeedRaw("token", "legacy-token")

	v, ok := store.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "legacy-token", v)

	// A namespaced write shadows the legacy value.
	require.NoError(t, store.Set("token", "new-token"))
	v, _ = store.Get("token")
	assert.Equal(t, "new-token", v)

	// Remove drops both forms.
	require.NoError(t, store.Remove("token"))
	_, ok = store.Get("token")
	assert.False(t, ok)
}

func TestTokenAbsent(t *testing.T) {
	store := NewMemoryStore("")

	_, ok := Token(store)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyToken, ""))
	_, ok = Token(store)
	assert.False(t, ok, "empty token is no token")

	_, ok = Token(nil)
	assert.False(t, ok, "nil session fails closed")
}

func TestProfileFailsClosedOnBadJSON(t *testing.T) {
	store := NewMemoryStore("")
	require.NoError(t, store.Set(KeyProfile, "{not json"))

	user, ok := Profile(store)
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestSaveAuthAndClearAuth(t *testing.T) {
	store := NewMemoryStore("")
	user := &models.User{ID: "u1", Name: "Dina", Role: "user"}

	require.NoError(t, SaveAuth(store, "tok-1", user))

	token, ok := Token(store)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	stored, ok := Profile(store)
	require.True(t, ok)
	assert.Equal(t, "u1", stored.ID)
	assert.Equal(t, "Dina", stored.Name)

	ClearAuth(store)
	_, ok = Token(store)
	assert.False(t, ok)
	_, ok = Profile(store)
	assert.False(t, ok)
}

func TestFlashIsOneShot(t *testing.T) {
	store := NewMemoryStore("")

	SetFlash(store, "saved")
	assert.Equal(t, "saved", PopFlash(store))
	assert.Equal(t, "", PopFlash(store))
}

func TestWatchNotifiesOnWriteAndRemove(t *testing.T) {
	store := NewMemoryStore("")

	var gotValue string
	var gotOK bool
	calls := 0
	cancel := store.Watch(KeyCart, func(value string, ok bool) {
		gotValue, gotOK = value, ok
		calls++
	})

	require.NoError(t, store.Set(KeyCart, `[{"id":"c1"}]`))
	assert.Equal(t, 1, calls)
	assert.True(t, gotOK)
	assert.Equal(t, `[{"id":"c1"}]`, gotValue)

	require.NoError(t, store.Remove(KeyCart))
	assert.Equal(t, 2, calls)
	assert.False(t, gotOK)

	cancel()
	require.NoError(t, store.Set(KeyCart, "[]"))
	assert.Equal(t, 2, calls, "cancelled watcher stays quiet")
}

func TestClearNotifiesWatchers(t *testing.T) {
	store := NewMemoryStore("")
	require.NoError(t, store.Set(KeyCart, "[]"))

	notified := false
	store.Watch(KeyCart, func(value string, ok bool) {
		notified = true
		assert.False(t, ok)
	})

	require.NoError(t, store.Clear())
	assert.True(t, notified)
}
