package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		resource      string
		id            string
		limit         int
		window        time.Duration
		expectedAllow bool
		env           string
	}{
		{
			name:          "Test Environment Bypass",
			resource:      "test",
			id:            "1",
			limit:         1,
			window:        time.Minute,
			expectedAllow: true,
			env:           "test",
		},
		{
			name:          "Development Environment Bypass",
			resource:      "test",
			id:            "1",
			limit:         1,
			window:        time.Minute,
			expectedAllow: true,
			env:           "development",
		},
		{
			name:          "Nil Redis Fail-Open",
			resource:      "test",
			id:            "1",
			limit:         1,
			window:        time.Minute,
			expectedAllow: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("APP_ENV", tt.env)
			} else {
				t.Setenv("APP_ENV", "production")
			}

			allowed, err := CheckRateLimit(context.Background(), nil, tt.resource, tt.id, tt.limit, tt.window)
			if tt.name == "Nil Redis Fail-Open" {
				assert.Error(t, err)
				assert.False(t, allowed)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAllow, allowed)
			}
		})
	}
}

func TestRateLimitCountsAgainstWindow(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "signup", "ip:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := CheckRateLimit(ctx, rdb, "signup", "ip:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different caller keeps its own counter.
	allowed, err = CheckRateLimit(ctx, rdb, "signup", "ip:10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Expiry resets the window.
	mr.FastForward(2 * time.Minute)
	allowed, err = CheckRateLimit(ctx, rdb, "signup", "ip:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitExceededReturns429(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := fiber.New()
	app.Get("/login", RateLimit(rdb, 1, time.Minute, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Bypass in test mode", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "test")
		app.Get("/test", RateLimit(nil, 1, time.Minute), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("FailOpen with nil redis in production", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "production")
		app.Get("/test", RateLimit(nil, 1, time.Minute), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("FailClosed with nil redis in production", func(t *testing.T) {
		app := fiber.New()
		t.Setenv("APP_ENV", "production")
		app.Get("/sensitive", RateLimitWithPolicy(nil, 1, time.Minute, FailClosed), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/sensitive", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		_ = resp.Body.Close()
	})
}
