package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/infrastructure/session"
	"github.com/ims/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys set by the session middleware
const (
	PrincipalKey    = "principal"
	SessionTokenKey = "session_token"
)

// SessionIdentity resolves the session cookie to a request principal.
// Requests without a valid session carry the anonymous principal;
// rejecting them is RequireAuth's job.
func SessionIdentity(store session.Store, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := identity.Anonymous()

		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			sess, err := store.Get(c.Request.Context(), token)
			switch {
			case err == nil:
				principal = sess.Principal()
				c.Set(SessionTokenKey, token)
			case errors.Is(err, session.ErrNotFound):
				// expired or unknown token, stay anonymous
			default:
				logger.Error("session lookup failed", zap.Error(err))
			}
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c).IsAnonymous() {
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeUnauthenticated,
				"Authentication required",
				requestID,
			))
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the request principal set by SessionIdentity,
// or the anonymous principal when the middleware did not run
func GetPrincipal(c *gin.Context) identity.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if principal, ok := v.(identity.Principal); ok {
			return principal
		}
	}
	return identity.Anonymous()
}

// GetSessionToken returns the token behind the current session, empty
// for anonymous requests
func GetSessionToken(c *gin.Context) string {
	return c.GetString(SessionTokenKey)
}
