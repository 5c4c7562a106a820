package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/messmate/internal/client/models"
)

// GetProfile fetches the authenticated user's profile. A 401/403 from this
// call is the signal that the installed token is no longer valid.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, nil, &u); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &u, nil
}

// GetActiveUsers returns the active member directory.
func (c *Client) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/user/active", nil, nil, &users); err != nil {
		return nil, fmt.Errorf("get active users: %w", err)
	}
	return users, nil
}

// UpdateProfile patches the given user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) error {
	path := fmt.Sprintf("/user/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
