package service

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// PerformanceService implements review cycles.
type PerformanceService struct {
	repo      ports.PerformanceRepository
	employees ports.EmployeeRepository
}

func NewPerformanceService(repo ports.PerformanceRepository, employees ports.EmployeeRepository) *PerformanceService {
	return &PerformanceService{repo: repo, employees: employees}
}

func (s *PerformanceService) List(ctx context.Context, employeeID string) ([]domain.PerformanceReview, error) {
	return s.repo.List(ctx, employeeID)
}

func (s *PerformanceService) Get(ctx context.Context, id string) (*domain.PerformanceReview, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PerformanceService) Create(ctx context.Context, review domain.PerformanceReview) (*domain.PerformanceReview, error) {
	if err := s.validate(ctx, &review); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &review)
}

func (s *PerformanceService) Update(ctx context.Context, review domain.PerformanceReview) (*domain.PerformanceReview, error) {
	if review.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.repo.FindByID(ctx, review.ID); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &review); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, &review)
}

func (s *PerformanceService) validate(ctx context.Context, review *domain.PerformanceReview) error {
	if review.EmployeeID == "" || review.ReviewPeriod == "" {
		return domain.ErrInvalidInput
	}
	if review.OverallRating < 1 || review.OverallRating > 5 {
		return domain.ErrInvalidInput
	}
	if _, err := s.employees.FindByID(ctx, review.EmployeeID); err != nil {
		return err
	}
	for _, goal := range review.Goals {
		if goal.Progress < 0 || goal.Progress > 100 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
