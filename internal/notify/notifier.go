// Package notify carries typed authentication events from the session layer
// to interested subscribers (audit logging, metrics) without the producers
// knowing who listens.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// EventKind tags an AuthEvent.
type EventKind string

const (
	LoginSucceeded EventKind = "login_succeeded"
	LoginFailed    EventKind = "login_failed"
	LoginThrottled EventKind = "login_throttled"
	LoggedOut      EventKind = "logged_out"
)

// AuthEvent is the payload delivered to subscribers.
type AuthEvent struct {
	Kind   EventKind
	Email  string
	UserID string
	Role   domain.Role
	At     time.Time
}

// Subscriber consumes one event. Subscribers run on the notifier goroutine
// and must not block.
type Subscriber func(AuthEvent)

const channelBuffer = 64

// Notifier fans auth events out to subscribers on a single background
// goroutine. Publish never blocks the request path: when the buffer is full
// the event is dropped and counted.
type Notifier struct {
	ch   chan AuthEvent
	subs []Subscriber
	log  zerolog.Logger
}

func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{
		ch:  make(chan AuthEvent, channelBuffer),
		log: log,
	}
}

// Subscribe registers a subscriber. Not safe to call after Start.
func (n *Notifier) Subscribe(sub Subscriber) {
	n.subs = append(n.subs, sub)
}

// Start launches the delivery goroutine. It stops when ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-n.ch:
				for _, sub := range n.subs {
					sub(event)
				}
			}
		}
	}()
}

// Publish enqueues an event for delivery.
func (n *Notifier) Publish(event AuthEvent) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	select {
	case n.ch <- event:
	default:
		n.log.Warn().Str("kind", string(event.Kind)).Msg("auth event dropped: notifier buffer full")
	}
}
