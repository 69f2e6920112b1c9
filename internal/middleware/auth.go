package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"travel-storefront/internal/models"
	"travel-storefront/internal/session"
)

type contextKey string

const UserContextKey contextKey = "user"

const accessDeniedMessage = "Access denied. Only administrators can open that page."

// WithSession opens the request's session handle and attaches it to the
// context so the guard, the handlers and the API client all share it.
func WithSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Open(w, r)
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

// LoadUser parses the cached profile into the context. Storage or parse
// errors are swallowed: the request continues with no user, which is the
// least-privileged outcome.
func LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if user, ok := session.Profile(sess); ok {
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth gates routes that need a login. Without a token the user is
// sent to /login with the originally requested path preserved, so login
// can return them afterward.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if _, ok := session.Token(sess); !ok {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the admin area. The token rule applies first; then the
// stored profile must parse and carry the admin role (case-insensitive).
// Anything else is redirected to the user home with an access-denied flash.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if _, ok := session.Token(sess); !ok {
			redirectToLogin(w, r)
			return
		}

		user, ok := session.Profile(sess)
		if !ok || !user.IsAdmin() {
			session.SetFlash(sess, accessDeniedMessage)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// BlockAdminOnUserRoutes keeps admin accounts out of end-user screens: an
// admin session navigating a user route lands on the admin home instead.
// A missing or broken profile passes through; user routes apply their own
// auth rules.
func BlockAdminOnUserRoutes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if user, ok := session.Profile(sess); ok && user.IsAdmin() {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAuthenticated keeps logged-in users off the auth-entry pages
// (login/register), sending them to the home matching their role.
func RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if _, ok := session.Token(sess); ok {
			user, _ := session.Profile(sess)
			http.Redirect(w, r, user.HomePath(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the parsed profile from the request context.
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUserContext sets the user in the context (for testing)
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
}

// SafeRedirectPath validates a post-login return path: it must be a local
// absolute path, or the fallback is used.
func SafeRedirectPath(path, fallback string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return fallback
	}
	return path
}
