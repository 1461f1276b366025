// Package auth decodes core API access tokens locally. The signing key
// belongs to the core API, so claims are read WITHOUT signature
// verification and are good for display and expiry scheduling only, never
// for authorization decisions.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingExpiry  = errors.New("token carries no expiry")
)

// Claims are the display-relevant fields of a core API access token
type Claims struct {
	Subject   string
	Name      string
	TenantID  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiresWithin reports whether the token expires inside the window
func (c *Claims) ExpiresWithin(window time.Duration, now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.Add(window).After(c.ExpiresAt)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// DecodeClaims parses a JWT without verifying its signature and extracts
// the claims the dashboard shows (sub, name, tenant_id, role) plus the
// timestamps used to schedule refreshes.
func DecodeClaims(token string) (*Claims, error) {
	parsed := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return nil, ErrMalformedToken
	}

	claims := &Claims{
		Subject:  parsed.Subject,
		Name:     parsed.Name,
		TenantID: parsed.TenantID,
		Role:     parsed.Role,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

// TokenExpiry returns when the token expires, or ErrMissingExpiry when the
// token has no exp claim. Used to size session TTLs off the refresh token.
func TokenExpiry(token string) (time.Time, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt.IsZero() {
		return time.Time{}, ErrMissingExpiry
	}
	return claims.ExpiresAt, nil
}
