package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// Directory is the static user directory credentials are checked against.
// There is no registration path; the seeded accounts are the whole population.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*domain.DirectoryUser, error)
	FindByID(ctx context.Context, id string) (*domain.DirectoryUser, error)
	All(ctx context.Context) ([]domain.User, error)
}
