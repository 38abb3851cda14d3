package memstore

import (
	"sync"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// AttemptStore keeps login rate-limit counters in process memory.
// Durability is out of scope: a restart forgives all attempts.
type AttemptStore struct {
	mu       sync.Mutex
	attempts map[string]ports.LoginAttempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string]ports.LoginAttempt)}
}

func (s *AttemptStore) Get(email string) (ports.LoginAttempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[email]
	return attempt, ok
}

func (s *AttemptStore) Put(email string, attempt ports.LoginAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[email] = attempt
}

func (s *AttemptStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, email)
}
