package service

import (
	"context"
	"time"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// LeaveService implements the leave request lifecycle.
type LeaveService struct {
	repo      ports.LeaveRepository
	employees ports.EmployeeRepository
	now       func() time.Time
}

func NewLeaveService(repo ports.LeaveRepository, employees ports.EmployeeRepository, now func() time.Time) *LeaveService {
	if now == nil {
		now = time.Now
	}
	return &LeaveService{repo: repo, employees: employees, now: now}
}

func (s *LeaveService) List(ctx context.Context, filter ports.LeaveFilter) ([]domain.LeaveRequest, error) {
	return s.repo.List(ctx, filter)
}

func (s *LeaveService) Submit(ctx context.Context, input ports.LeaveInput) (*domain.LeaveRequest, error) {
	if input.EmployeeID == "" || input.StartDate == "" || input.EndDate == "" || input.Days <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case domain.LeaveAnnual, domain.LeaveSick, domain.LeavePersonal, domain.LeaveMaternity, domain.LeavePaternity:
	default:
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.employees.FindByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.LeaveRequest{
		EmployeeID:  input.EmployeeID,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Days:        input.Days,
		Reason:      input.Reason,
		Status:      domain.LeavePending,
		AppliedDate: s.now().UTC().Format("2006-01-02"),
	})
}

func (s *LeaveService) Approve(ctx context.Context, id string, approver *domain.User) (*domain.LeaveRequest, error) {
	return s.decide(ctx, id, domain.LeaveApproved, approver)
}

func (s *LeaveService) Reject(ctx context.Context, id string, approver *domain.User) (*domain.LeaveRequest, error) {
	return s.decide(ctx, id, domain.LeaveRejected, approver)
}

// decide transitions a pending request. Decided requests are immutable.
func (s *LeaveService) decide(ctx context.Context, id, status string, approver *domain.User) (*domain.LeaveRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.LeavePending {
		return nil, domain.ErrLeaveNotPending
	}
	request.Status = status
	request.ApprovedBy = approver.Name
	return s.repo.Update(ctx, request)
}
