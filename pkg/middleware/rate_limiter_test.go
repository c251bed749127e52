package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute (2 per second) with burst of 1
	rl := NewRateLimiter(120, 1)

	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	// 120 req/min = 0.5 seconds per token
	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Third request should be allowed after waiting")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(2, 1)

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow(), "IP 1 first request should be allowed")
	assert.True(t, limiter2.Allow(), "IP 2 first request should be allowed")

	assert.False(t, limiter1.Allow(), "IP 1 second request should be blocked")
	assert.False(t, limiter2.Allow(), "IP 2 second request should be blocked")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2, 1)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	wrappedHandler := rl.RateLimitMiddleware()(handler)

	req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
	req1.RemoteAddr = "192.168.1.1:12345"
	rec1 := httptest.NewRecorder()
	c1 := e.NewContext(req1, rec1)

	err := wrappedHandler(c1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec1.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
	req2.RemoteAddr = "192.168.1.1:12346"
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req2, rec2)

	err = wrappedHandler(c2)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_BurstBehavior(t *testing.T) {
	// 60 req/min (1 req/sec) with burst of 10
	rl := NewRateLimiter(60, 10)
	limiter := rl.GetLimiter("192.168.1.1")

	allowedCount := 0
	for i := 0; i < 15; i++ {
		if limiter.Allow() {
			allowedCount++
		}
	}

	assert.Equal(t, 10, allowedCount, "Should allow exactly burst size requests")

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Should allow 1 request after token refill")
}

func TestOperatorAuth(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	wrapped := OperatorAuth("secret-token")(handler)

	run := func(configure func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		configure(req)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		assert.NoError(t, wrapped(c))
		return rec
	}

	rec := run(func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret-token")
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = run(func(req *http.Request) {
		req.Header.Set("X-Operator-Token", "secret-token")
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = run(func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = run(func(*http.Request) {})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOperatorAuthDisabledWhenUnset(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	wrapped := OperatorAuth("")(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, wrapped(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
