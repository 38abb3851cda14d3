package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// AttendanceFilter narrows attendance listings. Zero values match everything.
type AttendanceFilter struct {
	Date       string
	EmployeeID string
	Status     string
}

// AttendanceRepository stores daily clock records.
type AttendanceRepository interface {
	List(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error)
	FindByID(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	FindOpen(ctx context.Context, employeeID, date string) (*domain.AttendanceRecord, error)
	Create(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	Update(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
}
