package auth

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest carries dashboard sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// Profile is the signed-in identity as the dashboard presents it. It is
// captured at login time from the core API and lives in the session.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	TenantID uuid.UUID `json:"tenant_id"`
	Role     string    `json:"role"`
}

// LoginResult is what the login handler needs to establish the browser
// session: the cookie value, its lifetime, and the profile for the response
// body. Tokens stay server-side.
type LoginResult struct {
	SessionID string        `json:"-"`
	TTL       time.Duration `json:"-"`
	ExpiresAt time.Time     `json:"expires_at"`
	Profile   Profile       `json:"profile"`
}
