package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func ping(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	r := newLimitedRouter(t)

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, ping(r, "203.0.113.7:4000"), "request %d should be within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "203.0.113.7:4000"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newLimitedRouter(t)

	for i := 0; i < 11; i++ {
		ping(r, "203.0.113.8:4000")
	}
	require.Equal(t, http.StatusTooManyRequests, ping(r, "203.0.113.8:4000"))

	assert.Equal(t, http.StatusOK, ping(r, "203.0.113.9:4000"), "an exhausted neighbor must not affect other clients")
}
