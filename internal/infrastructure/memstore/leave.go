package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// LeaveStore is the seeded in-memory leave repository.
type LeaveStore struct {
	mu       sync.RWMutex
	requests map[string]domain.LeaveRequest
}

func NewLeaveStore() *LeaveStore {
	s := &LeaveStore{requests: make(map[string]domain.LeaveRequest)}
	for _, r := range seedLeave {
		s.requests[r.ID] = r
	}
	return s
}

func (s *LeaveStore) List(_ context.Context, filter ports.LeaveFilter) ([]domain.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LeaveRequest, 0, len(s.requests))
	for _, r := range s.requests {
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliedDate != out[j].AppliedDate {
			return out[i].AppliedDate > out[j].AppliedDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *LeaveStore) FindByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrLeaveNotFound
	}
	return &r, nil
}

func (s *LeaveStore) Create(_ context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *request
	if created.ID == "" {
		created.ID = newID()
	}
	s.requests[created.ID] = created
	return &created, nil
}

func (s *LeaveStore) Update(_ context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[request.ID]; !ok {
		return nil, domain.ErrLeaveNotFound
	}
	s.requests[request.ID] = *request
	updated := *request
	return &updated, nil
}
