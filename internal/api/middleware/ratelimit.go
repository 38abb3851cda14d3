package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an IP's token bucket survives without traffic
// before a sweep may drop it. Idle buckets are full anyway, so eviction does
// not loosen the policy.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters tracks one token bucket per client IP and sweeps idle entries
// whenever a new IP appears, so the map stays bounded by recent traffic.
type ipLimiters struct {
	mu    sync.Mutex
	limit rate.Limit
	burst int
	now   func() time.Time
	seen  map[string]*ipLimiter
}

func newIPLimiters(perMinute int, now func() time.Time) *ipLimiters {
	if now == nil {
		now = time.Now
	}
	return &ipLimiters{
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: perMinute,
		now:   now,
		seen:  make(map[string]*ipLimiter),
	}
}

func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.seen[ip]
	if !ok {
		l.sweep(now)
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.seen[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

// sweep drops entries idle longer than limiterIdleTTL. Caller holds the lock.
func (l *ipLimiters) sweep(now time.Time) {
	for ip, entry := range l.seen {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.seen, ip)
		}
	}
}

// IPRateLimit throttles requests per client IP with a token bucket refilled
// at perMinute. It sits in front of the per-email login policy as a coarse
// shield against spray attacks from a single address.
func IPRateLimit(perMinute int) echo.MiddlewareFunc {
	limiters := newIPLimiters(perMinute, nil)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiters.allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
