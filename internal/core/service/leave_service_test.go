package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
	"github.com/qubitara/hr-console/internal/infrastructure/memstore"
)

func newTestLeaveService() *LeaveService {
	now := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	return NewLeaveService(memstore.NewLeaveStore(), memstore.NewEmployeeStore(), now)
}

func hrApprover() *domain.User {
	return &domain.User{ID: "2", Name: "Harendra Singh", Role: domain.RoleHR}
}

func TestLeaveSubmit(t *testing.T) {
	svc := newTestLeaveService()

	created, err := svc.Submit(context.Background(), ports.LeaveInput{
		EmployeeID: "3",
		Type:       domain.LeaveAnnual,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
		Days:       5,
		Reason:     "Spring break",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created request should get an ID")
	}
	if created.Status != domain.LeavePending {
		t.Fatalf("new request must start pending, got %s", created.Status)
	}
	if created.AppliedDate != "2024-01-15" {
		t.Fatalf("applied date should come from the injected clock, got %s", created.AppliedDate)
	}
}

func TestLeaveSubmit_Validation(t *testing.T) {
	svc := newTestLeaveService()

	cases := []struct {
		name  string
		input ports.LeaveInput
		want  error
	}{
		{
			"missing employee",
			ports.LeaveInput{Type: domain.LeaveSick, StartDate: "2024-03-01", EndDate: "2024-03-02", Days: 2},
			domain.ErrInvalidInput,
		},
		{
			"unknown leave type",
			ports.LeaveInput{EmployeeID: "1", Type: "sabbatical", StartDate: "2024-03-01", EndDate: "2024-03-02", Days: 2},
			domain.ErrInvalidInput,
		},
		{
			"zero days",
			ports.LeaveInput{EmployeeID: "1", Type: domain.LeaveSick, StartDate: "2024-03-01", EndDate: "2024-03-02"},
			domain.ErrInvalidInput,
		},
		{
			"unknown employee",
			ports.LeaveInput{EmployeeID: "999", Type: domain.LeaveSick, StartDate: "2024-03-01", EndDate: "2024-03-02", Days: 2},
			domain.ErrEmployeeNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLeaveApprove(t *testing.T) {
	svc := newTestLeaveService()

	// Seed request 1 is pending.
	approved, err := svc.Approve(context.Background(), "1", hrApprover())
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.LeaveApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}
	if approved.ApprovedBy != "Harendra Singh" {
		t.Fatalf("approver name should be recorded, got %s", approved.ApprovedBy)
	}
}

func TestLeaveReject(t *testing.T) {
	svc := newTestLeaveService()

	rejected, err := svc.Reject(context.Background(), "1", hrApprover())
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.LeaveRejected {
		t.Fatalf("expected rejected status, got %s", rejected.Status)
	}
}

func TestLeaveDecide_RejectsDecidedRequests(t *testing.T) {
	svc := newTestLeaveService()

	// Seed request 2 is already approved, 3 already rejected.
	if _, err := svc.Approve(context.Background(), "2", hrApprover()); !errors.Is(err, domain.ErrLeaveNotPending) {
		t.Fatalf("expected ErrLeaveNotPending, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), "3", hrApprover()); !errors.Is(err, domain.ErrLeaveNotPending) {
		t.Fatalf("expected ErrLeaveNotPending, got %v", err)
	}
}

func TestLeaveDecide_UnknownRequest(t *testing.T) {
	svc := newTestLeaveService()

	if _, err := svc.Approve(context.Background(), "999", hrApprover()); !errors.Is(err, domain.ErrLeaveNotFound) {
		t.Fatalf("expected ErrLeaveNotFound, got %v", err)
	}
}

func TestLeaveList_Filters(t *testing.T) {
	svc := newTestLeaveService()

	pending, err := svc.List(context.Background(), ports.LeaveFilter{Status: domain.LeavePending})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "1" {
		t.Fatalf("expected only seed request 1 pending, got %+v", pending)
	}

	mine, err := svc.List(context.Background(), ports.LeaveFilter{EmployeeID: "2"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].EmployeeID != "2" {
		t.Fatalf("expected employee 2's single request, got %+v", mine)
	}
}
