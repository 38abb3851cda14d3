// Package metrics defines and registers all custom Prometheus metrics for the
// HR console. It is the single source of truth for metric names, labels, and
// help strings; everything registers with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr_console"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SessionDecodeFailuresTotal counts session cookies that failed to decode,
// covering both corruption and expiry. These surface to the user only as a
// redirect to the login page.
var SessionDecodeFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_decode_failures_total",
		Help:      "Total number of session cookies rejected as corrupt or expired.",
	},
)

// GuardRedirectsTotal counts route guard decisions that did not render.
// Label:
//   - reason: "unauthenticated" (sent to /login) or "wrong_role" (sent to the
//     role's own landing path)
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of route guard redirects, labelled by reason.",
	},
	[]string{"reason"},
)

// ── HR module metrics ─────────────────────────────────────────────────────────

// LeaveDecisionsTotal counts leave request decisions.
// Label:
//   - decision: "approved" or "rejected"
var LeaveDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_decisions_total",
		Help:      "Total number of leave requests decided, labelled by decision.",
	},
	[]string{"decision"},
)

// AnnouncementsCreatedTotal counts notices published through the API.
var AnnouncementsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_created_total",
		Help:      "Total number of announcements created.",
	},
)
