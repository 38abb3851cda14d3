package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// AnnouncementRepository stores company and department notices.
type AnnouncementRepository interface {
	List(ctx context.Context) ([]domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	Create(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error)
	Update(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error)
}
