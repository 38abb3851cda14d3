package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// PerformanceStore is the seeded in-memory review repository.
type PerformanceStore struct {
	mu      sync.RWMutex
	reviews map[string]domain.PerformanceReview
}

func NewPerformanceStore() *PerformanceStore {
	s := &PerformanceStore{reviews: make(map[string]domain.PerformanceReview)}
	for _, r := range seedReviews {
		s.reviews[r.ID] = r
	}
	return s
}

func (s *PerformanceStore) List(_ context.Context, employeeID string) ([]domain.PerformanceReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PerformanceReview, 0, len(s.reviews))
	for _, r := range s.reviews {
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		out = append(out, cloneReview(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReviewDate != out[j].ReviewDate {
			return out[i].ReviewDate > out[j].ReviewDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *PerformanceStore) FindByID(_ context.Context, id string) (*domain.PerformanceReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := cloneReview(r)
	return &clone, nil
}

func (s *PerformanceStore) Create(_ context.Context, review *domain.PerformanceReview) (*domain.PerformanceReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneReview(*review)
	if created.ID == "" {
		created.ID = newID()
	}
	for i := range created.Goals {
		if created.Goals[i].ID == "" {
			created.Goals[i].ID = newID()
		}
	}
	s.reviews[created.ID] = created
	result := cloneReview(created)
	return &result, nil
}

func (s *PerformanceStore) Update(_ context.Context, review *domain.PerformanceReview) (*domain.PerformanceReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; !ok {
		return nil, domain.ErrReviewNotFound
	}
	updated := cloneReview(*review)
	s.reviews[updated.ID] = updated
	result := cloneReview(updated)
	return &result, nil
}

// cloneReview copies the goals slice so callers cannot alias store state.
func cloneReview(r domain.PerformanceReview) domain.PerformanceReview {
	clone := r
	clone.Goals = make([]domain.Goal, len(r.Goals))
	copy(clone.Goals, r.Goals)
	return clone
}
