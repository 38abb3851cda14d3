package service

import (
	"context"
	"time"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// OverviewService aggregates counts for the role landing payload.
type OverviewService struct {
	employees     ports.EmployeeRepository
	attendance    ports.AttendanceRepository
	leave         ports.LeaveRepository
	announcements ports.AnnouncementRepository
	now           func() time.Time
}

func NewOverviewService(
	employees ports.EmployeeRepository,
	attendance ports.AttendanceRepository,
	leave ports.LeaveRepository,
	announcements ports.AnnouncementRepository,
	now func() time.Time,
) *OverviewService {
	if now == nil {
		now = time.Now
	}
	return &OverviewService{
		employees:     employees,
		attendance:    attendance,
		leave:         leave,
		announcements: announcements,
		now:           now,
	}
}

func (s *OverviewService) Summary(ctx context.Context, viewer *domain.User) (*ports.OverviewSummary, error) {
	summary := &ports.OverviewSummary{}

	staff, err := s.employees.List(ctx, ports.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	summary.TotalEmployees = len(staff)
	for _, e := range staff {
		if e.Status == domain.EmployeeActive {
			summary.ActiveEmployees++
		}
	}

	pending, err := s.leave.List(ctx, ports.LeaveFilter{Status: domain.LeavePending})
	if err != nil {
		return nil, err
	}
	summary.PendingLeave = len(pending)

	today := s.now().UTC().Format("2006-01-02")
	present, err := s.attendance.List(ctx, ports.AttendanceFilter{Date: today, Status: domain.AttendancePresent})
	if err != nil {
		return nil, err
	}
	summary.PresentToday = len(present)

	notices, err := s.announcements.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range notices {
		if viewer.Role != domain.RoleEmployee || a.VisibleTo(viewer.Department) {
			summary.OpenAnnouncements++
		}
	}

	return summary, nil
}
