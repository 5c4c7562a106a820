package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/messmate/internal/client/models"
)

// SignIn exchanges credentials for a bearer token. The token is returned,
// not installed; the session manager decides when to adopt it.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp models.AuthResponse
	req := models.SignInRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", nil, req, &resp); err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}
	return resp.AccessToken, nil
}

// SignUp creates an account and returns the issued bearer token.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (string, error) {
	var resp models.AuthResponse
	req := models.SignUpRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &resp); err != nil {
		return "", fmt.Errorf("sign up: %w", err)
	}
	return resp.AccessToken, nil
}
