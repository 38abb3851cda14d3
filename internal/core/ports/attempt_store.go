package ports

import "time"

// LoginAttempt is the per-email failed-attempt counter tracked by the rate
// limiter. It lives in process memory only; durability is out of scope.
type LoginAttempt struct {
	Count int
	Last  time.Time
}

// AttemptStore holds rate-limit counters keyed by normalized email.
// Implementations must be safe for concurrent use.
type AttemptStore interface {
	Get(email string) (LoginAttempt, bool)
	Put(email string, attempt LoginAttempt)
	Delete(email string)
}
