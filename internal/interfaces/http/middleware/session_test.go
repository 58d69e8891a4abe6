package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/infrastructure/session"
	"github.com/ims/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookie = "ims_session"

func newSessionRouter(t *testing.T, store session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionIdentity(store, testCookie, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, GetPrincipal(c))
	})
	protected := r.Group("/", RequireAuth())
	protected.GET("/secret", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func loginSession(t *testing.T, store session.Store) *session.Session {
	t.Helper()
	user, err := identity.NewUser("Jane", "Doe", "jane@example.com", "jane", "secret1", "secret1")
	require.NoError(t, err)
	user.ID = 1

	sess := session.New(user)
	require.NoError(t, store.Save(context.Background(), sess, time.Minute))
	return sess
}

func TestSessionIdentity(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := newSessionRouter(t, store)

	t.Run("valid cookie resolves the principal", func(t *testing.T) {
		sess := loginSession(t, store)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.Token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var principal identity.Principal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &principal))
		assert.Equal(t, uint(1), principal.UserID)
		assert.Equal(t, "jane", principal.Username)
	})

	t.Run("no cookie means anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var principal identity.Principal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &principal))
		assert.True(t, principal.IsAnonymous())
	})

	t.Run("unknown token means anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "bogus"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var principal identity.Principal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &principal))
		assert.True(t, principal.IsAnonymous())
	})
}

func TestRequireAuth(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := newSessionRouter(t, store)

	t.Run("rejects anonymous requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeUnauthenticated, resp.Error.Code)
	})

	t.Run("passes authenticated requests", func(t *testing.T) {
		sess := loginSession(t, store)

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.Token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("propagates an existing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"https://app.example.com"}
	r.Use(CORSWithConfig(cfg))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
