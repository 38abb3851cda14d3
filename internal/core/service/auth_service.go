package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// AuthService validates credentials against the static directory under the
// login rate-limit policy.
type AuthService struct {
	directory ports.Directory
	limiter   *LoginRateLimiter
	delay     time.Duration
}

// NewAuthService wires the validator. delay is an artificial latency applied
// to every attempt, success or failure; pass 0 to disable (tests).
func NewAuthService(directory ports.Directory, limiter *LoginRateLimiter, delay time.Duration) *AuthService {
	return &AuthService{directory: directory, limiter: limiter, delay: delay}
}

// Authenticate checks an email/password pair. The rate limiter is consulted
// before the directory so an exhausted window never reveals whether the
// account exists.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(sanitizeInput(email))
	password = sanitizeInput(password)

	if !s.limiter.Allow(email) {
		return nil, domain.ErrTooManyAttempts
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	record, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.limiter.Reset(email)

	user := record.User
	return &user, nil
}

// simulateLatency mimics the round trip a real credential check would make.
func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var inputStripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

// sanitizeInput trims whitespace and strips angle brackets and quotes.
func sanitizeInput(s string) string {
	return inputStripper.Replace(strings.TrimSpace(s))
}
