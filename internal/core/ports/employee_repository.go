package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// EmployeeFilter narrows employee listings. Zero values match everything.
type EmployeeFilter struct {
	Department string
	Status     string
	Search     string
}

// EmployeeRepository stores staff records.
type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Departments(ctx context.Context) ([]string, error)
}
