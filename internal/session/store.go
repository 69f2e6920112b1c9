// Package session abstracts the client-held state that proves a login and
// caches the cart: an injected key/value store with get/set/remove/clear,
// so the route guard and the API client depend on an interface rather than
// a concrete backend. All reads fail closed; a broken or missing value is
// treated as absence, never as an error that reaches navigation.
package session

import (
	"context"
	"encoding/json"
	"net/http"

	"travel-storefront/internal/models"
)

// Storage keys. Reads first try the namespaced form ("<prefix>:<key>") and
// fall back to the raw key for values written before namespacing existed.
const (
	KeyToken   = "token"
	KeyProfile = "userProfile"
	KeyCart    = "cart"
	KeyTotals  = "travelapp_transaction_totals"
	keyFlash   = "flash"

	DefaultPrefix = "TRAVELAPP"
)

// Session is one client's stored state.
type Session interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
	Clear() error
}

// Store hands out the Session bound to a request.
type Store interface {
	Open(w http.ResponseWriter, r *http.Request) Session
}

// Watcher is implemented by stores that can report writes made through
// another handle to the same underlying state — the equivalent of the
// browser's cross-tab storage event. Notification is best-effort.
type Watcher interface {
	Watch(key string, fn func(value string, ok bool)) (cancel func())
}

// Token returns the stored auth token, if any.
func Token(s Session) (string, bool) {
	if s == nil {
		return "", false
	}
	token, ok := s.Get(KeyToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Profile parses the cached user profile. A missing or unparsable profile
// yields (nil, false): the caller must treat that as "no role".
func Profile(s Session) (*models.User, bool) {
	if s == nil {
		return nil, false
	}
	raw, ok := s.Get(KeyProfile)
	if !ok || raw == "" {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// SaveAuth stores the token and profile returned by a successful login.
func SaveAuth(s Session, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.Set(KeyToken, token); err != nil {
		return err
	}
	return s.Set(KeyProfile, string(raw))
}

// ClearAuth drops the token and profile so the next navigation takes the
// guard's "no session" path. Used for logout and for the global 401 policy.
func ClearAuth(s Session) {
	if s == nil {
		return
	}
	_ = s.Remove(KeyToken)
	_ = s.Remove(KeyProfile)
}

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(s Session, message string) {
	if s != nil {
		_ = s.Set(keyFlash, message)
	}
}

// PopFlash returns and clears the pending flash message.
func PopFlash(s Session) string {
	if s == nil {
		return ""
	}
	message, ok := s.Get(keyFlash)
	if !ok {
		return ""
	}
	_ = s.Remove(keyFlash)
	return message
}

type contextKey string

const sessionContextKey contextKey = "session"

// NewContext attaches a session handle to a request context.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext returns the session attached to the context, or nil.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(sessionContextKey).(Session)
	if !ok {
		return nil
	}
	return s
}
