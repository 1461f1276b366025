package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/auth"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
)

// Gateway is the slice of the core API client the auth flows use
type Gateway interface {
	Login(ctx context.Context, email, password string) (*gateway.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*gateway.TokenPair, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*gateway.User, error)
}

// Service owns the browser-session lifecycle: it exchanges credentials for
// core API tokens, keeps the pair server-side, and rotates it before expiry
// so the dashboard never sees a mid-flight 401.
type Service struct {
	gateway         Gateway
	sessions        session.Store
	cfg             config.SessionConfig
	logger          *zap.Logger
	now             func() time.Time
	businessMetrics *telemetry.BusinessMetrics
}

// NewService creates the auth service
func NewService(gw Gateway, sessions session.Store, cfg config.SessionConfig, logger *zap.Logger) *Service {
	return &Service{
		gateway:  gw,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// SetBusinessMetrics sets the business metrics recorder for this service
func (s *Service) SetBusinessMetrics(metrics *telemetry.BusinessMetrics) {
	s.businessMetrics = metrics
}

// Login exchanges credentials upstream and opens a server-side session
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	result, err := s.gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			s.logger.Warn("Login rejected upstream", zap.String("email", req.Email))
			if s.businessMetrics != nil {
				s.businessMetrics.RecordLogin(ctx, telemetry.LoginFailed)
			}
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		s.logger.Error("Login call failed", zap.Error(err))
		return nil, err
	}

	id, err := session.NewID()
	if err != nil {
		s.logger.Error("Failed to generate session id", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	now := s.now()
	sess := &session.Session{
		ID:               id,
		UserID:           result.User.ID,
		Email:            result.User.Email,
		Name:             result.User.Name,
		TenantID:         result.User.TenantID,
		Role:             result.User.Role,
		AccessToken:      result.Tokens.AccessToken,
		RefreshToken:     result.Tokens.RefreshToken,
		AccessExpiresAt:  tokenExpiry(result.Tokens.AccessToken, result.Tokens.AccessTokenExpiresAt),
		RefreshExpiresAt: tokenExpiry(result.Tokens.RefreshToken, result.Tokens.RefreshTokenExpiresAt),
		CreatedAt:        now,
	}

	ttl := s.sessionTTL(sess, now)
	if err := s.sessions.Save(ctx, sess, ttl); err != nil {
		s.logger.Error("Failed to persist session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	s.logger.Info("User signed in",
		zap.String("user_id", sess.UserID.String()),
		zap.String("email", sess.Email))

	if s.businessMetrics != nil {
		s.businessMetrics.RecordLogin(ctx, telemetry.LoginSucceeded)
	}

	return &LoginResult{
		SessionID: sess.ID,
		TTL:       ttl,
		ExpiresAt: now.Add(ttl),
		Profile:   profileOf(sess),
	}, nil
}

// Authenticate resolves a session ID to a live session, rotating the token
// pair when it is about to expire. Middleware calls this on every dashboard
// request.
func (s *Service) Authenticate(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, shared.ErrSessionExpired
		}
		s.logger.Error("Session lookup failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load session")
	}

	now := s.now()
	if !sess.NeedsRefresh(s.cfg.RefreshSkew, now) {
		return sess, nil
	}
	return s.rotate(ctx, sess)
}

// Refresh rotates the session's token pair unconditionally
func (s *Service) Refresh(ctx context.Context, sess *session.Session) (*session.Session, error) {
	return s.rotate(ctx, sess)
}

// rotate exchanges the refresh token for a new pair and re-saves the
// session. A session whose refresh token is spent is deleted so the next
// request gets a clean 401.
func (s *Service) rotate(ctx context.Context, sess *session.Session) (*session.Session, error) {
	now := s.now()
	if !sess.Refreshable(now) {
		s.drop(ctx, sess.ID)
		return nil, shared.ErrSessionExpired
	}

	pair, err := s.gateway.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			s.logger.Warn("Refresh token rejected upstream", zap.String("user_id", sess.UserID.String()))
			s.drop(ctx, sess.ID)
			return nil, shared.ErrSessionExpired
		}
		s.logger.Error("Token refresh failed", zap.Error(err))
		return nil, err
	}

	sess.AccessToken = pair.AccessToken
	sess.AccessExpiresAt = tokenExpiry(pair.AccessToken, pair.AccessTokenExpiresAt)
	if pair.RefreshToken != "" {
		sess.RefreshToken = pair.RefreshToken
		sess.RefreshExpiresAt = tokenExpiry(pair.RefreshToken, pair.RefreshTokenExpiresAt)
	}

	if err := s.sessions.Save(ctx, sess, s.sessionTTL(sess, now)); err != nil {
		s.logger.Error("Failed to persist rotated session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update session")
	}

	s.logger.Debug("Session tokens rotated", zap.String("user_id", sess.UserID.String()))
	return sess, nil
}

// Logout revokes the token upstream and deletes the session. The upstream
// call is best-effort: the session is gone either way.
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.gateway.Logout(gateway.WithToken(ctx, sess.AccessToken)); err != nil {
		s.logger.Warn("Upstream logout failed", zap.Error(err),
			zap.String("user_id", sess.UserID.String()))
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.logger.Error("Failed to delete session", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete session")
	}
	s.logger.Info("User signed out", zap.String("user_id", sess.UserID.String()))
	return nil
}

// Me returns the profile captured in the session. No upstream hop: the
// session is the source of truth until the user signs in again.
func (s *Service) Me(sess *session.Session) Profile {
	return profileOf(sess)
}

// RemoteProfile fetches the profile behind the context's bearer token.
// Used for programmatic clients that carry no session.
func (s *Service) RemoteProfile(ctx context.Context) (*Profile, error) {
	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		TenantID: user.TenantID,
		Role:     user.Role,
	}, nil
}

// ExchangeRefreshToken forwards a raw refresh token for bearer-mode clients.
// The caller keeps the returned pair; no session is involved.
func (s *Service) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*gateway.TokenPair, error) {
	pair, err := s.gateway.RefreshToken(ctx, refreshToken)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token rejected")
		}
		return nil, err
	}
	return pair, nil
}

func (s *Service) drop(ctx context.Context, id string) {
	if err := s.sessions.Delete(ctx, id); err != nil && !errors.Is(err, session.ErrNotFound) {
		s.logger.Warn("Failed to drop expired session", zap.Error(err))
	}
}

// sessionTTL bounds the store entry by the refresh token's remaining life,
// capped by the configured session TTL.
func (s *Service) sessionTTL(sess *session.Session, now time.Time) time.Duration {
	ttl := s.cfg.TTL
	if !sess.RefreshExpiresAt.IsZero() {
		if remaining := sess.RefreshExpiresAt.Sub(now); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}

// tokenExpiry prefers the expiry the core API reported and falls back to the
// token's own exp claim.
func tokenExpiry(token string, reported time.Time) time.Time {
	if !reported.IsZero() {
		return reported
	}
	exp, err := auth.TokenExpiry(token)
	if err != nil {
		return time.Time{}
	}
	return exp
}

func profileOf(sess *session.Session) Profile {
	return Profile{
		ID:       sess.UserID,
		Email:    sess.Email,
		Name:     sess.Name,
		TenantID: sess.TenantID,
		Role:     sess.Role,
	}
}
