package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
	"arfurnish/pkg/response"
)

// RateLimiter is a fixed-window per-client-address limiter. Windows are
// tracked in memory; counts reset when the window elapses.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*window
	limit    int
	interval time.Duration
}

type window struct {
	count   int
	started time.Time
}

func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*window),
		limit:    limit,
		interval: interval,
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.visitors[ip]
	if !exists || now.Sub(w.started) >= rl.interval {
		rl.visitors[ip] = &window{count: 1, started: now}
		return true
	}

	if w.count >= rl.limit {
		return false
	}

	w.count++
	return true
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !rl.allow(ip) {
				logger.Warn("Rate limit exceeded for %s", ip)
				return response.Error(c, errors.TooManyRequests("Too many requests, please try again later"))
			}
			return next(c)
		}
	}
}

// cleanup drops stale windows so the visitor map does not grow unbounded.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, w := range rl.visitors {
			if now.Sub(w.started) > 2*rl.interval {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
