package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// PerformanceRepository stores review cycles.
type PerformanceRepository interface {
	List(ctx context.Context, employeeID string) ([]domain.PerformanceReview, error)
	FindByID(ctx context.Context, id string) (*domain.PerformanceReview, error)
	Create(ctx context.Context, review *domain.PerformanceReview) (*domain.PerformanceReview, error)
	Update(ctx context.Context, review *domain.PerformanceReview) (*domain.PerformanceReview, error)
}
