package middleware

import (
	"testing"
	"time"
)

func TestIPLimiters_ThrottlesSingleAddress(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	limiters := newIPLimiters(2, func() time.Time { return now })

	if !limiters.allow("192.0.2.1") || !limiters.allow("192.0.2.1") {
		t.Fatalf("burst of 2 should be allowed")
	}
	if limiters.allow("192.0.2.1") {
		t.Fatalf("third request inside the window should be throttled")
	}
	// A different address has its own bucket.
	if !limiters.allow("192.0.2.2") {
		t.Fatalf("other address should be unaffected")
	}
}

func TestIPLimiters_BurstMatchesPerMinute(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	limiters := newIPLimiters(60, func() time.Time { return now })

	for i := 0; i < 60; i++ {
		if !limiters.allow("192.0.2.1") {
			t.Fatalf("request %d should use the burst", i+1)
		}
	}
	if limiters.allow("192.0.2.1") {
		t.Fatalf("burst should be spent")
	}
}

func TestIPLimiters_SweepsIdleAddresses(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	limiters := newIPLimiters(10, func() time.Time { return now })

	limiters.allow("192.0.2.1")
	limiters.allow("192.0.2.2")
	if len(limiters.seen) != 2 {
		t.Fatalf("expected 2 tracked addresses, got %d", len(limiters.seen))
	}

	// A new address after the idle TTL triggers the sweep of the stale ones.
	now = now.Add(limiterIdleTTL + time.Minute)
	limiters.allow("192.0.2.3")
	if len(limiters.seen) != 1 {
		t.Fatalf("idle addresses should be swept, %d still tracked", len(limiters.seen))
	}
	if _, ok := limiters.seen["192.0.2.3"]; !ok {
		t.Fatalf("the new address should be tracked")
	}
}

func TestIPLimiters_ActiveAddressSurvivesSweep(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	limiters := newIPLimiters(1000, func() time.Time { return now })

	limiters.allow("192.0.2.1")

	// Keep the first address active past the TTL, then introduce a new one.
	now = now.Add(limiterIdleTTL - time.Minute)
	limiters.allow("192.0.2.1")
	now = now.Add(2 * time.Minute)
	limiters.allow("192.0.2.2")

	if _, ok := limiters.seen["192.0.2.1"]; !ok {
		t.Fatalf("recently active address must not be swept")
	}
}
