package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/auth"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/middleware"
)

// AuthHandler handles sign-in, sign-out and profile endpoints. Token
// material stays server-side; browsers only ever see the session cookie.
type AuthHandler struct {
	BaseHandler
	auth   *authapp.Service
	cookie config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *authapp.Service, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// RefreshTokenRequest is the explicit-refresh payload for bearer-mode
// clients that manage their own core API tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login godoc
// @Summary      Sign in
// @Description  Exchange credentials for a dashboard session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body authapp.LoginRequest true "Credentials"
// @Success      200 {object} dto.Response{data=authapp.LoginResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req authapp.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cookie, result.SessionID, result.TTL)
	h.Success(c, result)
}

// Logout godoc
// @Summary      Sign out
// @Description  Delete the session and revoke the upstream token (best effort)
// @Tags         auth
// @Produce      json
// @Success      204 "session deleted"
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		// Bearer-mode clients own their tokens; there is no session to drop.
		h.NoContent(c)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), sess); err != nil {
		h.HandleError(c, err)
		return
	}

	middleware.ClearSessionCookie(c, h.cookie)
	h.NoContent(c)
}

// Me godoc
// @Summary      Current user
// @Description  Profile of the signed-in user
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=authapp.Profile}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		h.Success(c, h.auth.Me(sess))
		return
	}

	// Bearer mode: the profile lives upstream, not in a session.
	profile, err := h.auth.RemoteProfile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotate the session's upstream token pair, or exchange a raw refresh token in bearer mode
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest false "Refresh token (bearer mode only)"
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		rotated, err := h.auth.Refresh(c.Request.Context(), sess)
		if err != nil {
			middleware.ClearSessionCookie(c, h.cookie)
			h.HandleError(c, err)
			return
		}
		h.Success(c, h.auth.Me(rotated))
		return
	}

	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, "refresh_token is required in bearer mode")
		return
	}

	pair, err := h.auth.ExchangeRefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pair)
}
