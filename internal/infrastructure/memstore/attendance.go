package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// AttendanceStore is the seeded in-memory attendance repository.
type AttendanceStore struct {
	mu      sync.RWMutex
	records map[string]domain.AttendanceRecord
}

func NewAttendanceStore() *AttendanceStore {
	s := &AttendanceStore{records: make(map[string]domain.AttendanceRecord)}
	for _, r := range seedAttendance {
		s.records[r.ID] = r
	}
	return s
}

func (s *AttendanceStore) List(_ context.Context, filter ports.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0, len(s.records))
	for _, r := range s.records {
		if filter.Date != "" && r.Date != filter.Date {
			continue
		}
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *AttendanceStore) FindByID(_ context.Context, id string) (*domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	return &r, nil
}

// FindOpen returns the employee's record for date that has no clock-out yet.
func (s *AttendanceStore) FindOpen(_ context.Context, employeeID, date string) (*domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.Date == date && r.TimeOut == "" {
			record := r
			return &record, nil
		}
	}
	return nil, domain.ErrAttendanceNotFound
}

func (s *AttendanceStore) Create(_ context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *record
	if created.ID == "" {
		created.ID = newID()
	}
	s.records[created.ID] = created
	return &created, nil
}

func (s *AttendanceStore) Update(_ context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.ID]; !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	s.records[record.ID] = *record
	updated := *record
	return &updated, nil
}
