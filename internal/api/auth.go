package api

import (
	"context"
	"net/http"

	"github.com/alexisbeaulieu97/storefront/internal/state"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Login exchanges credentials for a profile and token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser returns the profile the token belongs to.
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.WithToken(token).do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate adapts Login to the store's Authenticator contract. A 2xx
// response that carries no token is treated as a rejection.
func (c *Client) Authenticate(ctx context.Context, creds state.Credentials) (state.UserProfile, string, error) {
	resp, err := c.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return state.UserProfile{}, "", err
	}
	token := resp.Credential()
	if token == "" {
		return state.UserProfile{}, "", apperrors.NewAPIError(http.StatusOK, apperrors.InvalidLoginMessage)
	}
	return resp.Profile(), token, nil
}
