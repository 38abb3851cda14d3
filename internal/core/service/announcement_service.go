package service

import (
	"context"
	"slices"
	"time"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// AnnouncementService implements notices with department-scoped visibility.
type AnnouncementService struct {
	repo ports.AnnouncementRepository
	now  func() time.Time
}

func NewAnnouncementService(repo ports.AnnouncementRepository, now func() time.Time) *AnnouncementService {
	if now == nil {
		now = time.Now
	}
	return &AnnouncementService{repo: repo, now: now}
}

// List returns the notices the viewer's department may see. Admin and HR see
// everything so they can manage department-scoped notices.
func (s *AnnouncementService) List(ctx context.Context, viewer *domain.User) ([]domain.Announcement, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if viewer.Role != domain.RoleEmployee {
		return all, nil
	}

	visible := make([]domain.Announcement, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(viewer.Department) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

func (s *AnnouncementService) Create(ctx context.Context, input ports.AnnouncementInput, author *domain.User) (*domain.Announcement, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := input.Priority
	switch priority {
	case "":
		priority = domain.PriorityMedium
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return nil, domain.ErrInvalidInput
	}
	department := input.Department
	if department == "" {
		department = domain.AllDepartments
	}

	return s.repo.Create(ctx, &domain.Announcement{
		Title:       input.Title,
		Content:     input.Content,
		Priority:    priority,
		Department:  department,
		CreatedBy:   author.Name,
		CreatedDate: s.now().UTC().Format("2006-01-02"),
		ReadBy:      []string{},
	})
}

func (s *AnnouncementService) Update(ctx context.Context, id string, input ports.AnnouncementInput) (*domain.Announcement, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		announcement.Title = input.Title
	}
	if input.Content != "" {
		announcement.Content = input.Content
	}
	if input.Priority != "" {
		announcement.Priority = input.Priority
	}
	if input.Department != "" {
		announcement.Department = input.Department
	}
	return s.repo.Update(ctx, announcement)
}

// MarkRead is idempotent per reader.
func (s *AnnouncementService) MarkRead(ctx context.Context, id, readerID string) (*domain.Announcement, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(announcement.ReadBy, readerID) {
		announcement.ReadBy = append(announcement.ReadBy, readerID)
		return s.repo.Update(ctx, announcement)
	}
	return announcement, nil
}
