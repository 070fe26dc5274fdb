package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedHandler(t *testing.T, cfg RateLimitConfig) echo.HandlerFunc {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return RateLimiterWithConfig(ctx, cfg)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/budget", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	return rec, err
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := echo.New()
	handler := RateLimiter(ctx)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Test that requests within the burst are allowed
	for i := 0; i < DefaultBurst; i++ {
		rec, err := serve(e, handler, "192.168.1.100:12345")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}

	// Rate limiter uses SendError which sends response and returns nil
	rec, err := serve(e, handler, "192.168.1.100:12345")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestRateLimiterWithConfig(t *testing.T) {
	e := echo.New()
	handler := newLimitedHandler(t, RateLimitConfig{RequestsPerSecond: 2, Burst: 4})

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
	handler := newLimitedHandler(t, RateLimitConfig{RequestsPerSecond: 1, Burst: 2})

	// Different IPs should have independent rate limits
	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 2; i++ {
			rec, err := serve(e, handler, ip)
			assert.NoError(t, err, "Request %d for IP %s should succeed", i, ip)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}
}

func TestClientIPExtractor(t *testing.T) {
	_, proxyNet, err := net.ParseCIDR("10.0.0.0/8")
	require.NoError(t, err)

	tests := []struct {
		name       string
		trusted    []*net.IPNet
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "no proxies ignores a spoofed X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "198.51.100.4:12345",
			expected:   "198.51.100.4",
		},
		{
			name:       "no proxies ignores X-Real-IP",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "198.51.100.4:12345",
			expected:   "198.51.100.4",
		},
		{
			name:       "trusted proxy forwards the client address",
			trusted:    []*net.IPNet{proxyNet},
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "10.1.2.3:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "client-prepended hops are skipped",
			trusted:    []*net.IPNet{proxyNet},
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.9, 10.0.0.7"},
			remoteAddr: "10.1.2.3:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "untrusted peer keeps its own address",
			trusted:    []*net.IPNet{proxyNet},
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "198.51.100.4:12345",
			expected:   "198.51.100.4",
		},
		{
			name:       "loopback is not trusted implicitly",
			trusted:    []*net.IPNet{proxyNet},
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.IPExtractor = ClientIPExtractor(tt.trusted)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, c.RealIP())
		})
	}
}

func TestRateLimiter_RotatingForwardedForDoesNotBypassLimit(t *testing.T) {
	e := echo.New()
	e.IPExtractor = ClientIPExtractor(nil)
	handler := newLimitedHandler(t, RateLimitConfig{RequestsPerSecond: 1, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/budget", nil)
		req.RemoteAddr = "198.51.100.4:12345"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestVisitorStore_EvictIdle(t *testing.T) {
	store := newVisitorStore(RateLimitConfig{})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.get("old_ip")
	now = now.Add(DefaultVisitorTTL + time.Second)
	store.get("new_ip")

	store.evictIdle()

	assert.Equal(t, 1, store.len(), "Old visitor should be removed")
	_, oldExists := store.visitors["old_ip"]
	_, newExists := store.visitors["new_ip"]
	assert.False(t, oldExists, "Old visitor should not exist")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestVisitorStore_AppliesDefaults(t *testing.T) {
	store := newVisitorStore(RateLimitConfig{RequestsPerSecond: -1})

	assert.Equal(t, float64(DefaultRequestsPerSecond), float64(store.limit))
	assert.Equal(t, DefaultBurst, store.burst)
	assert.Equal(t, DefaultVisitorTTL, store.ttl)
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	handler := newLimitedHandler(t, RateLimitConfig{RequestsPerSecond: 1, Burst: 10})

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	rateLimitCount := 0

	// Simulate concurrent requests from same IP
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec, err := serve(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				switch rec.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					rateLimitCount++
				}
			}
		}()
	}

	wg.Wait()

	assert.GreaterOrEqual(t, successCount, 10, "The burst should succeed")
	assert.Greater(t, rateLimitCount, 0, "Some requests should be rate limited")
	assert.Equal(t, 20, successCount+rateLimitCount, "All requests should be accounted for")
}
