package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/ims/backend/internal/application/identity"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	cookie      config.CookieConfig
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, cookie config.CookieConfig, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		sessionTTL:  sessionTTL,
	}
}

// Login authenticates a user and starts a session. The session token
// travels only in the cookie, never in the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.sessionTTL.Seconds()))
	h.Success(c, result)
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// Logout ends the current session and clears the cookie. Safe to call
// without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	h.NoContent(c)
}

// Me returns the account behind the current session
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	user, err := h.authService.CurrentUser(c.Request.Context(), principal)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
