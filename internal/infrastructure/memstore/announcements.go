package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// AnnouncementStore is the seeded in-memory announcement repository.
type AnnouncementStore struct {
	mu      sync.RWMutex
	notices map[string]domain.Announcement
}

func NewAnnouncementStore() *AnnouncementStore {
	s := &AnnouncementStore{notices: make(map[string]domain.Announcement)}
	for _, a := range seedAnnouncements {
		s.notices[a.ID] = cloneAnnouncement(a)
	}
	return s
}

func (s *AnnouncementStore) List(_ context.Context) ([]domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Announcement, 0, len(s.notices))
	for _, a := range s.notices {
		out = append(out, cloneAnnouncement(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedDate != out[j].CreatedDate {
			return out[i].CreatedDate > out[j].CreatedDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *AnnouncementStore) FindByID(_ context.Context, id string) (*domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.notices[id]
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	clone := cloneAnnouncement(a)
	return &clone, nil
}

func (s *AnnouncementStore) Create(_ context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneAnnouncement(*announcement)
	if created.ID == "" {
		created.ID = newID()
	}
	s.notices[created.ID] = created
	result := cloneAnnouncement(created)
	return &result, nil
}

func (s *AnnouncementStore) Update(_ context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notices[announcement.ID]; !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	updated := cloneAnnouncement(*announcement)
	s.notices[updated.ID] = updated
	result := cloneAnnouncement(updated)
	return &result, nil
}

// cloneAnnouncement copies the readBy slice so callers cannot alias store state.
func cloneAnnouncement(a domain.Announcement) domain.Announcement {
	clone := a
	clone.ReadBy = make([]string, len(a.ReadBy))
	copy(clone.ReadBy, a.ReadBy)
	return clone
}
