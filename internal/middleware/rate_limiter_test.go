package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"delivery-finance/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedHandler(cfg config.SecurityConfig) (*IPRateLimiter, echo.HandlerFunc) {
	limiter := NewIPRateLimiter(cfg)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return limiter, handler
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/process-deliveries", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	return rec, err
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})

	// Test that requests within limit are allowed
	for i := 0; i < 5; i++ {
		rec, err := serve(e, handler, "192.168.1.100:12345")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Make many requests to exceed rate limit
	rateLimited := false
	for i := 0; i < 20; i++ {
		rec, err := serve(e, handler, "192.168.1.100:12345")
		// Rate limiter uses SendError which sends response and returns nil
		if err == nil && rec.Code == http.StatusTooManyRequests {
			assert.Contains(t, rec.Body.String(), "SYSTEM_006")
			rateLimited = true
			break
		}
	}

	assert.True(t, rateLimited, "Should be rate limited after many requests")
}

func TestRateLimiterBurst(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(config.SecurityConfig{RateLimitPerSecond: 2, RateLimitBurst: 4})

	// Should allow initial burst
	for i := 0; i < 4; i++ {
		rec, err := serve(e, handler, "192.168.1.2:12345")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Next request should be rate limited
	rec, err := serve(e, handler, "192.168.1.2:12345")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterDifferentIPs(t *testing.T) {
	e := echo.New()
	limiter, handler := newLimitedHandler(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 5})

	// Different IPs should have independent rate limits
	ips := []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"}

	for _, ip := range ips {
		for i := 0; i < 5; i++ {
			rec, err := serve(e, handler, ip)
			assert.NoError(t, err, "Request %d for IP %s should succeed", i, ip)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}
	assert.Equal(t, 3, limiter.size())
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "X-Forwarded-For header",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name: "X-Forwarded-For chain uses the client entry",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name: "X-Real-IP header",
			headers: map[string]string{
				"X-Real-IP": "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestVisitorEviction(t *testing.T) {
	limiter := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	now := time.Now()

	limiter.allow("old_ip", now.Add(-5*time.Minute))
	limiter.allow("new_ip", now)
	limiter.evict(now)

	assert.Equal(t, 1, limiter.size(), "Old visitor should be removed")
	limiter.mu.Lock()
	_, oldExists := limiter.visitors["old_ip"]
	_, newExists := limiter.visitors["new_ip"]
	limiter.mu.Unlock()

	assert.False(t, oldExists, "Old visitor should not exist")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestRunCleanupStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})

	var wg sync.WaitGroup
	successCount := 0
	rateLimitCount := 0
	var mu sync.Mutex

	// Simulate concurrent requests from same IP
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec, err := serve(e, handler, "192.168.1.100:12345")

			mu.Lock()
			if err == nil {
				if rec.Code == http.StatusOK {
					successCount++
				} else if rec.Code == http.StatusTooManyRequests {
					rateLimitCount++
				}
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Greater(t, successCount, 0, "Some requests should succeed")
	assert.Greater(t, rateLimitCount, 0, "Some requests should be rate limited")
	assert.Equal(t, 20, successCount+rateLimitCount, "All requests should be accounted for")
}
