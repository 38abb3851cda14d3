package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// AuthService validates credentials against the directory.
type AuthService interface {
	// Authenticate returns the public user record on success. Unknown email
	// and wrong password both yield domain.ErrInvalidCredentials; an exhausted
	// rate-limit window yields domain.ErrTooManyAttempts before credentials
	// are inspected.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
