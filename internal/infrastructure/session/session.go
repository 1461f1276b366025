// Package session stores core API token grants server-side, keyed by the
// opaque ID the browser carries in its HttpOnly cookie. No token material
// ever reaches the client.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID resolves to nothing: never
// created, expired, or deleted by logout.
var ErrNotFound = errors.New("session: not found")

// Session binds a signed-in user to their core API token pair
type Session struct {
	ID               string    `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	TenantID         uuid.UUID `json:"tenant_id"`
	Role             string    `json:"role"`
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// NeedsRefresh reports whether the access token expires within the skew and
// should be rotated before proxying the request.
func (s *Session) NeedsRefresh(skew time.Duration, now time.Time) bool {
	if s.AccessExpiresAt.IsZero() {
		return false
	}
	return now.Add(skew).After(s.AccessExpiresAt)
}

// Refreshable reports whether the refresh token is still usable
func (s *Session) Refreshable(now time.Time) bool {
	return s.RefreshExpiresAt.IsZero() || now.Before(s.RefreshExpiresAt)
}

// Store persists sessions. Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the session under its ID for at most ttl
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	// Get returns the session or ErrNotFound
	Get(ctx context.Context, id string) (*Session, error)
	// Delete removes the session; deleting a missing session is not an error
	Delete(ctx context.Context, id string) error
	// Close releases store resources
	Close() error
}

// NewID generates an opaque, URL-safe session identifier
func NewID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
