package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cineplex/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	cases := map[string]RateLimitType{
		"/health":                           RateLimitTypeHealth,
		"/api/v1/admin/analytics/dashboard": RateLimitTypeAnalytics,
		"/api/v1/admin/bookings":            RateLimitTypeAdmin,
		"/api/v1/auth/login":                RateLimitTypeAuth,
		"/api/v1/seats/hold":                RateLimitTypeBookingCritical,
		"/api/v1/seats/hold/:holdId":        RateLimitTypeBookingCritical,
		"/api/v1/bookings/checkout":         RateLimitTypeBookingCritical,
		"/api/v1/bookings/:id/cancel":       RateLimitTypeBookingCritical,
		"/api/v1/rewards/:id/redeem":        RateLimitTypeBookingCritical,
		"/api/v1/bookings/:id":              RateLimitTypeBooking,
		"/api/v1/selection/quote":           RateLimitTypeBooking,
		"/api/v1/pricing/refund-quote":      RateLimitTypeBooking,
		"/api/v1/users/me/holds":            RateLimitTypeUser,
		"/api/v1/membership":                RateLimitTypeUser,
		"/api/v1/movies/:id/showtimes":      RateLimitTypePublic,
		"/api/v1/concessions":               RateLimitTypePublic,
		"/api/v1/rewards":                   RateLimitTypePublic,
		"/swagger/*any":                     RateLimitTypeDefault,
	}
	for path, want := range cases {
		assert.Equal(t, want, getRateLimitType(path), path)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(config.RateLimitConfig{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		PublicRequests:  120,
		BookingRequests: 30,
		WhitelistedIPs:  []string{"10.0.0.1"},
	})
	assert.Equal(t, 10, cfg.BookingCriticalRequests)
	assert.Equal(t, 60, cfg.UserRequests)
	assert.Equal(t, 240, cfg.HealthRequests)

	cfg = NewConfig(config.RateLimitConfig{BookingRequests: 1})
	assert.Equal(t, 1, cfg.BookingCriticalRequests)
}

func TestIsAllowed_WithoutRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, NewConfig(config.RateLimitConfig{
		Enabled:        true,
		WindowDuration: time.Minute,
		AuthRequests:   10,
		WhitelistedIPs: []string{"10.0.0.1"},
	}))

	result, err := limiter.IsAllowed(context.Background(), "203.0.113.9", RateLimitTypeAuth)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 10, result.Remaining)

	assert.True(t, limiter.isWhitelisted("10.0.0.1"))
	assert.False(t, limiter.isWhitelisted("10.0.0.2"))
}

func TestMiddleware_Headers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(nil, NewConfig(config.RateLimitConfig{
		WindowDuration: time.Minute,
		PublicRequests: 120,
	}))

	router := gin.New()
	router.Use(Middleware(limiter))
	router.GET("/api/v1/movies", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "120", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "120", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.4:5123"
	assert.Equal(t, "192.0.2.4", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "192.0.2.99")
	assert.Equal(t, "192.0.2.99", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "not-an-ip")
	assert.Equal(t, "192.0.2.99", getClientIP(c))
}
