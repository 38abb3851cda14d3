package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// PayrollFilter narrows payroll listings. Zero values match everything.
type PayrollFilter struct {
	EmployeeID string
	Month      string
	Year       int
}

// PayrollRepository stores monthly pay statements.
type PayrollRepository interface {
	List(ctx context.Context, filter PayrollFilter) ([]domain.PayrollSummary, error)
	FindByID(ctx context.Context, id string) (*domain.PayrollSummary, error)
}
