package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"getwise/internal/errors"
	"getwise/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

// Default rate limit: 5 req/sec with a burst of 10 per client IP
const (
	DefaultRequestsPerSecond = 5
	DefaultBurst             = 10
	DefaultVisitorTTL        = 3 * time.Minute
)

var rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "api_rate_limited_total",
	Help: "Total number of requests rejected by the per-IP rate limiter",
})

// RateLimitConfig configures the per-IP rate limiter
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	VisitorTTL        time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore tracks one token bucket per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func newVisitorStore(cfg RateLimitConfig) *visitorStore {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.VisitorTTL <= 0 {
		cfg.VisitorTTL = DefaultVisitorTTL
	}
	return &visitorStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		ttl:      cfg.VisitorTTL,
		now:      time.Now,
	}
}

// RateLimiter creates a middleware for rate limiting requests per IP with the default limits
func RateLimiter(ctx context.Context) echo.MiddlewareFunc {
	return RateLimiterWithConfig(ctx, RateLimitConfig{})
}

// RateLimiterWithConfig creates a rate limiter with custom configuration.
// Clients are keyed by c.RealIP, so the Echo instance should carry a ClientIPExtractor.
// Idle visitors are evicted until ctx is cancelled.
func RateLimiterWithConfig(ctx context.Context, cfg RateLimitConfig) echo.MiddlewareFunc {
	store := newVisitorStore(cfg)
	go store.cleanupLoop(ctx)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.get(c.RealIP()).Allow() {
				rateLimitedTotal.Inc()
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(s.limit, s.burst)
		s.visitors[ip] = &visitor{limiter, s.now()}
		return limiter
	}

	v.lastSeen = s.now()
	return v.limiter
}

func (s *visitorStore) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *visitorStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, v := range s.visitors {
		if s.now().Sub(v.lastSeen) > s.ttl {
			delete(s.visitors, ip)
		}
	}
}

func (s *visitorStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// ClientIPExtractor decides which address c.RealIP reports. With no trusted proxies the
// TCP peer is the client and forwarding headers are ignored. Otherwise X-Forwarded-For is
// walked from the right, skipping only the listed proxies.
func ClientIPExtractor(trustedProxies []*net.IPNet) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trustedProxies {
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
