package client

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/models"
)

// SignInRequest is the credentials payload for authentication.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest registers a new user account.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn authenticates and returns the bearer token plus user record.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := SignInRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}
	return &out, nil
}

// SignUp registers a new account and returns the signed-in state.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}
	return &out, nil
}

// SignOut revokes the current token server-side. The local session is the
// caller's to clear.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}

// Me fetches the current user's record.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &out, nil
}
