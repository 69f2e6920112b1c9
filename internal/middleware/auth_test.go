package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-storefront/internal/models"
	"travel-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(t *testing.T, path string, store *session.MemoryStore) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	return r.WithContext(session.NewContext(r.Context(), store))
}

func seedAuth(t *testing.T, store *session.MemoryStore, role string) {
	t.Helper()
	raw, err := json.Marshal(&models.User{ID: "u1", Role: role})
	require.NoError(t, err)
	require.NoError(t, store.Set(session.KeyToken, "tok"))
	require.NoError(t, store.Set(session.KeyProfile, string(raw)))
}

func TestRequireAuthRedirectsWithReturnPath(t *testing.T) {
	store := session.NewMemoryStore("")
	w := httptest.NewRecorder()

	RequireAuth(okHandler()).ServeHTTP(w, requestWithSession(t, "/cart", store))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fcart", w.Header().Get("Location"))
}

func TestRequireAuthPassesWithToken(t *testing.T) {
	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyToken, "tok"))
	w := httptest.NewRecorder()

	RequireAuth(okHandler()).ServeHTTP(w, requestWithSession(t, "/cart", store))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminWithoutTokenGoesToLogin(t *testing.T) {
	store := session.NewMemoryStore("")
	w := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(w, requestWithSession(t, "/admin", store))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin", w.Header().Get("Location"))
}

func TestRequireAdminNonAdminDeniedWithFlash(t *testing.T) {
	store := session.NewMemoryStore("")
	seedAuth(t, store, "user")
	w := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(w, requestWithSession(t, "/admin", store))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, accessDeniedMessage, session.PopFlash(store))
}

func TestRequireAdminUnparsableProfileDenied(t *testing.T) {
	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyToken, "tok"))
	require.NoError(t, store.Set(session.KeyProfile, "{broken"))
	w := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(w, requestWithSession(t, "/admin", store))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireAdminCaseInsensitiveRole(t *testing.T) {
	store := session.NewMemoryStore("")
	seedAuth(t, store, "Admin")
	w := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(w, requestWithSession(t, "/admin", store))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlockAdminOnUserRoutes(t *testing.T) {
	store := session.NewMemoryStore("")
	seedAuth(t, store, "admin")
	w := httptest.NewRecorder()

	BlockAdminOnUserRoutes(okHandler()).ServeHTTP(w, requestWithSession(t, "/cart", store))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestBlockAdminLetsUsersThrough(t *testing.T) {
	store := session.NewMemoryStore("")
	seedAuth(t, store, "user")
	w := httptest.NewRecorder()

	BlockAdminOnUserRoutes(okHandler()).ServeHTTP(w, requestWithSession(t, "/cart", store))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlockAdminIgnoresBrokenProfile(t *testing.T) {
	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyProfile, "{broken"))
	w := httptest.NewRecorder()

	BlockAdminOnUserRoutes(okHandler()).ServeHTTP(w, requestWithSession(t, "/", store))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRedirectIfAuthenticatedByRole(t *testing.T) {
	adminStore := session.NewMemoryStore("")
	seedAuth(t, adminStore, "admin")
	w := httptest.NewRecorder()
	RedirectIfAuthenticated(okHandler()).ServeHTTP(w, requestWithSession(t, "/login", adminStore))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	userStore := session.NewMemoryStore("")
	seedAuth(t, userStore, "user")
	w = httptest.NewRecorder()
	RedirectIfAuthenticated(okHandler()).ServeHTTP(w, requestWithSession(t, "/login", userStore))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticatedTokenWithoutProfile(t *testing.T) {
	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyToken, "tok"))
	w := httptest.NewRecorder()

	RedirectIfAuthenticated(okHandler()).ServeHTTP(w, requestWithSession(t, "/login", store))

	// Token with no parsable profile still counts as authenticated; the
	// nil-safe HomePath lands on the user home.
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticatedAnonymousPasses(t *testing.T) {
	store := session.NewMemoryStore("")
	w := httptest.NewRecorder()

	RedirectIfAuthenticated(okHandler()).ServeHTTP(w, requestWithSession(t, "/login", store))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadUserPutsProfileInContext(t *testing.T) {
	store := session.NewMemoryStore("")
	seedAuth(t, store, "user")

	var got *models.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r.Context())
	})

	LoadUser(inner).ServeHTTP(httptest.NewRecorder(), requestWithSession(t, "/", store))

	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
}

func TestSafeRedirectPath(t *testing.T) {
	assert.Equal(t, "/cart", SafeRedirectPath("/cart", "/"))
	assert.Equal(t, "/", SafeRedirectPath("", "/"))
	assert.Equal(t, "/", SafeRedirectPath("https://evil.example", "/"))
	assert.Equal(t, "/", SafeRedirectPath("//evil.example", "/"))
}
