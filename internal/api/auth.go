package api

import (
	"context"
	"net/http"

	"travel-storefront/internal/models"
)

// LoginRequest carries the credentials forwarded verbatim to the API;
// credential checking is entirely an upstream concern.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordRepeat  string `json:"passwordRepeat"`
	Role            string `json:"role"`
	PhoneNumber     string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// Login exchanges credentials for a token and the user profile. The token
// arrives at the envelope's top level, next to data.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, *models.User, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", req)
	if err != nil {
		return "", nil, err
	}

	var user models.User
	if err := decodeData(env, &user); err != nil {
		return "", nil, err
	}
	if env.Token == "" {
		return "", nil, &Error{Status: 0, Message: "login response carried no token"}
	}
	return env.Token, &user, nil
}

// Register creates an account upstream. The caller logs in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/register", req, nil)
}

// Logout invalidates the token upstream. Best-effort: the local session is
// cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.get(ctx, "/logout", nil)
}
