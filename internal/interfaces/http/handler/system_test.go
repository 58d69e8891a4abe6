package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping() error { return p.err }

func TestSystemHandler_Health(t *testing.T) {
	h := NewSystemHandler(&stubPinger{})
	r := gin.New()
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSystemHandler_Ready(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{})
		r := gin.New()
		r.GET("/ready", h.Ready)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{err: errors.New("connection refused")})
		r := gin.New()
		r.GET("/ready", h.Ready)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Database is unreachable", resp.Error.Message)
	})
}
