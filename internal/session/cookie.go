package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const cookieName = "session"

// CookieStore keeps each client's state in an encrypted session cookie.
type CookieStore struct {
	store  *sessions.CookieStore
	prefix string
}

// NewCookieStore builds the production store. A bad or expired cookie is
// not an error: gorilla hands back a fresh empty session, which is exactly
// the fail-closed behavior the guard relies on.
func NewCookieStore(secret, prefix string) *CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   false, // set behind TLS termination in production
		SameSite: http.SameSiteLaxMode,
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &CookieStore{store: store, prefix: prefix}
}

func (cs *CookieStore) Open(w http.ResponseWriter, r *http.Request) Session {
	// Get never fails closed-open: on decode errors it returns a new empty
	// session alongside the error, so the error is deliberately ignored.
	gs, _ := cs.store.Get(r, cookieName)
	return &cookieSession{gs: gs, w: w, r: r, prefix: cs.prefix}
}

type cookieSession struct {
	gs     *sessions.Session
	w      http.ResponseWriter
	r      *http.Request
	prefix string
}

func (s *cookieSession) Get(key string) (string, bool) {
	if v, ok := s.gs.Values[s.prefix+":"+key].(string); ok {
		return v, true
	}
	// Raw-key fallback for values written before namespacing.
	if v, ok := s.gs.Values[key].(string); ok {
		return v, true
	}
	return "", false
}

func (s *cookieSession) Set(key, value string) error {
	s.gs.Values[s.prefix+":"+key] = value
	return s.gs.Save(s.r, s.w)
}

func (s *cookieSession) Remove(key string) error {
	delete(s.gs.Values, s.prefix+":"+key)
	delete(s.gs.Values, key)
	return s.gs.Save(s.r, s.w)
}

func (s *cookieSession) Clear() error {
	for k := range s.gs.Values {
		delete(s.gs.Values, k)
	}
	return s.gs.Save(s.r, s.w)
}
