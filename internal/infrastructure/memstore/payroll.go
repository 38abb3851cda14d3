package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// PayrollStore is the seeded in-memory payroll repository. Statements are
// read-only through the API; the seed is the whole dataset.
type PayrollStore struct {
	mu        sync.RWMutex
	summaries map[string]domain.PayrollSummary
}

func NewPayrollStore() *PayrollStore {
	s := &PayrollStore{summaries: make(map[string]domain.PayrollSummary)}
	for _, p := range seedPayroll {
		s.summaries[p.ID] = p
	}
	return s
}

func (s *PayrollStore) List(_ context.Context, filter ports.PayrollFilter) ([]domain.PayrollSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PayrollSummary, 0, len(s.summaries))
	for _, p := range s.summaries {
		if filter.EmployeeID != "" && p.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Month != "" && p.Month != filter.Month {
			continue
		}
		if filter.Year != 0 && p.Year != filter.Year {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *PayrollStore) FindByID(_ context.Context, id string) (*domain.PayrollSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.summaries[id]
	if !ok {
		return nil, domain.ErrPayrollNotFound
	}
	return &p, nil
}
