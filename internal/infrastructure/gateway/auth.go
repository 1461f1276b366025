package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// User is the core API's account profile
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	TenantID uuid.UUID `json:"tenant_id"`
	Role     string    `json:"role"`
}

// TokenPair is the core API's token grant. The pair never reaches the
// browser; it lives in the server-side session.
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LoginResult bundles the authenticated user with their token grant
type LoginResult struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges credentials for a token grant
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	return call[LoginResult](ctx, c, http.MethodPost, apiPrefix+"/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
}

// RefreshToken rotates a token pair using its refresh token
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	return call[TokenPair](ctx, c, http.MethodPost, apiPrefix+"/auth/refresh", refreshRequest{
		RefreshToken: refreshToken,
	})
}

// Logout revokes the context's token upstream. Best-effort: sessions are
// deleted locally whether or not this succeeds.
func (c *Client) Logout(ctx context.Context) error {
	return callNoContent(ctx, c, http.MethodPost, apiPrefix+"/auth/logout", nil)
}

// CurrentUser fetches the profile behind the context's token
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	return call[User](ctx, c, http.MethodGet, apiPrefix+"/auth/me", nil)
}
