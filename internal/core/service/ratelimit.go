package service

import (
	"time"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// LoginRateLimiter caps failed login attempts per email inside a sliding
// window. Counters increment on every disallowed-or-failed attempt and clear
// on success or window expiry.
type LoginRateLimiter struct {
	store  ports.AttemptStore
	max    int
	window time.Duration
	now    func() time.Time
}

// NewLoginRateLimiter builds a limiter over the given store. now may be nil,
// in which case time.Now is used; tests inject a fake clock.
func NewLoginRateLimiter(store ports.AttemptStore, max int, window time.Duration, now func() time.Time) *LoginRateLimiter {
	if now == nil {
		now = time.Now
	}
	return &LoginRateLimiter{store: store, max: max, window: window, now: now}
}

// Allow records an attempt for email and reports whether it may proceed.
// The check happens before the increment: an email at the cap is rejected
// without pushing the counter further, and a counter older than the window
// restarts at one.
func (l *LoginRateLimiter) Allow(email string) bool {
	now := l.now()

	attempt, ok := l.store.Get(email)
	if !ok || now.Sub(attempt.Last) > l.window {
		l.store.Put(email, ports.LoginAttempt{Count: 1, Last: now})
		return true
	}

	if attempt.Count >= l.max {
		return false
	}

	attempt.Count++
	attempt.Last = now
	l.store.Put(email, attempt)
	return true
}

// Reset clears the counter for email, typically after a successful login.
func (l *LoginRateLimiter) Reset(email string) {
	l.store.Delete(email)
}

// Attempts returns the current counter for email, zero if none is tracked.
func (l *LoginRateLimiter) Attempts(email string) int {
	attempt, ok := l.store.Get(email)
	if !ok {
		return 0
	}
	return attempt.Count
}
