package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(Config{BaseURL: srv.URL, APIKey: "test-api-key", Timeout: 5 * time.Second})
	return client, srv
}

func ctxWithSession(store session.Session) context.Context {
	return session.NewContext(context.Background(), store)
}

func TestClientSendsAPIKeyAndBearer(t *testing.T) {
	var gotAPIKey, gotAuth string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apiKey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"OK","data":[]}`))
	})

	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyToken, "tok-1"))

	_, err := client.Activities(ctxWithSession(store), 0)
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClientNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.Activities(ctxWithSession(session.NewMemoryStore("")), 0)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities", r.URL.Path)
		w.Write([]byte(`{"status":"OK","message":"ok","data":[{"id":"a1","title":"Dive Trip","price":150000}]}`))
	})

	activities, err := client.Activities(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Dive Trip", activities[0].Title)
	assert.Equal(t, 150000.0, activities[0].Price)
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	})

	store := session.NewMemoryStore("")
	require.NoError(t, store.Set(session.KeyToken, "stale"))
	require.NoError(t, store.Set(session.KeyProfile, `{"id":"u1"}`))

	_, err := client.Carts(ctxWithSession(store))
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	_, ok := session.Token(store)
	assert.False(t, ok, "token dropped after 401")
	_, ok = session.Profile(store)
	assert.False(t, ok, "profile dropped after 401")
}

func TestClientErrorCarriesUpstreamMessage(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"activity not available"}`))
	})

	err := client.AddToCart(context.Background(), "a1")
	require.Error(t, err)
	assert.Equal(t, "activity not available", FriendlyMessage(err))
}

func TestClientValidationErrorArray(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Validation failed","errors":[{"msg":"email must be valid"}]}`))
	})

	err := client.Register(context.Background(), RegisterRequest{})
	require.Error(t, err)
	assert.Equal(t, "email must be valid", FriendlyMessage(err))
}

func TestClientNetworkErrorStatusZero(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1", APIKey: "k", Timeout: time.Second})

	_, err := client.Activities(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "Could not reach the server. Check your connection and try again.", FriendlyMessage(err))
}

func TestLoginReturnsTopLevelToken(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"status":"OK","token":"jwt-123","data":{"id":"u1","name":"Dina","role":"user"}}`))
	})

	token, user, err := client.Login(context.Background(), LoginRequest{Email: "d@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", token)
	assert.Equal(t, "Dina", user.Name)
}

func TestLoginMissingTokenIsError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","data":{"id":"u1"}}`))
	})

	_, _, err := client.Login(context.Background(), LoginRequest{})
	assert.Error(t, err)
}

func TestUserProfileNormalizesRoleField(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","data":{"id":"u1","userRole":"Admin"}}`))
	})

	user, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}
