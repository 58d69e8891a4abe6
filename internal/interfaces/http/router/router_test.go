package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("system", "/system")
	group.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("carries name and prefix", func(t *testing.T) {
		g := NewDomainGroup("trade", "/trade")
		assert.Equal(t, "trade", g.Name())
		assert.Equal(t, "/trade", g.Prefix())
	})

	t.Run("registers routes per method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("trade", "/trade")
		g.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.POST("/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })
		g.PUT("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.DELETE("/orders/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		cases := []struct {
			method string
			path   string
			want   int
		}{
			{"GET", "/api/v1/trade/orders", http.StatusOK},
			{"POST", "/api/v1/trade/orders", http.StatusCreated},
			{"PUT", "/api/v1/trade/orders/1", http.StatusOK},
			{"DELETE", "/api/v1/trade/orders/1", http.StatusNoContent},
		}
		for _, tc := range cases {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
		}
	})

	t.Run("group middleware runs before routes", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("trade", "/trade")
		g.Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		})
		g.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/trade/orders", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("subgroups nest under the parent prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("partner", "/partner")
		sub := g.Group("customers", "/customers")
		sub.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/partner/customers", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
