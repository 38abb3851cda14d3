package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// LeaveFilter narrows leave listings. Zero values match everything.
type LeaveFilter struct {
	EmployeeID string
	Status     string
}

// LeaveRepository stores leave requests.
type LeaveRepository interface {
	List(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	Create(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)
	Update(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)
}
