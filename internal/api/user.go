package api

import (
	"context"
	"net/url"

	"travel-storefront/internal/models"
)

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.post(ctx, "/update-profile", req, nil)
}

// AllUsers lists every account; admin only.
func (c *Client) AllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/all-user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole switches an account between user and admin; admin only.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) error {
	body := map[string]string{"role": role}
	return c.post(ctx, "/update-user-role/"+url.PathEscape(id), body, nil)
}
