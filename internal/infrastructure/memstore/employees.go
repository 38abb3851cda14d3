package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// EmployeeStore is the seeded in-memory employee repository.
type EmployeeStore struct {
	mu        sync.RWMutex
	employees map[string]domain.Employee
}

func NewEmployeeStore() *EmployeeStore {
	s := &EmployeeStore{employees: make(map[string]domain.Employee)}
	for _, e := range seedEmployees {
		s.employees[e.ID] = e
	}
	return s
}

func (s *EmployeeStore) List(_ context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) &&
			!strings.Contains(strings.ToLower(e.Position), search) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *EmployeeStore) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return &e, nil
}

func (s *EmployeeStore) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if strings.EqualFold(e.Email, employee.Email) {
			return nil, domain.ErrEmployeeExists
		}
	}
	created := *employee
	if created.ID == "" {
		created.ID = newID()
	}
	s.employees[created.ID] = created
	return &created, nil
}

func (s *EmployeeStore) Update(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[employee.ID]; !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	s.employees[employee.ID] = *employee
	updated := *employee
	return &updated, nil
}

func (s *EmployeeStore) Departments(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, e := range s.employees {
		if _, ok := seen[e.Department]; !ok {
			seen[e.Department] = struct{}{}
			out = append(out, e.Department)
		}
	}
	sort.Strings(out)
	return out, nil
}
