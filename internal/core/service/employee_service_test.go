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

func TestEmployeeList_Filters(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	all, err := svc.List(context.Background(), ports.EmployeeFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 seeded employees, got %d", len(all))
	}

	engineering, err := svc.List(context.Background(), ports.EmployeeFilter{Department: "Engineering"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(engineering) != 2 {
		t.Fatalf("expected 2 engineers, got %d", len(engineering))
	}

	search, err := svc.List(context.Background(), ports.EmployeeFilter{Search: "sarah"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(search) != 1 || search[0].Name != "Sarah Johnson" {
		t.Fatalf("search should match by name, got %+v", search)
	}
}

func TestEmployeeCreate(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	created, err := svc.Create(context.Background(), ports.EmployeeInput{
		Name:       "Ana Torres",
		Email:      "ana.torres@company.com",
		Department: "Engineering",
		Position:   "Backend Developer",
		Salary:     70000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created employee should get an ID")
	}
	if created.Status != domain.EmployeeActive {
		t.Fatalf("new employees start active, got %s", created.Status)
	}
	if created.JoinDate == "" {
		t.Fatalf("join date should default to today")
	}
}

func TestEmployeeCreate_JoinDateFromClock(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	svc := NewEmployeeService(memstore.NewEmployeeStore(), now)

	created, err := svc.Create(context.Background(), ports.EmployeeInput{
		Name:       "Lena Fischer",
		Email:      "lena.fischer@company.com",
		Department: "Sales",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.JoinDate != "2024-01-15" {
		t.Fatalf("join date should come from the injected clock, got %s", created.JoinDate)
	}
}

func TestEmployeeCreate_DuplicateEmail(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	_, err := svc.Create(context.Background(), ports.EmployeeInput{
		Name:       "John Clone",
		Email:      "JOHN.DOE@company.com",
		Department: "Engineering",
	})
	if !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists for duplicate email, got %v", err)
	}
}

func TestEmployeeCreate_Validation(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	if _, err := svc.Create(context.Background(), ports.EmployeeInput{Name: "No Email"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEmployeeUpdate_PartialFields(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	updated, err := svc.Update(context.Background(), "1", ports.EmployeeInput{Position: "Staff Developer"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Position != "Staff Developer" {
		t.Fatalf("position not updated: %s", updated.Position)
	}
	if updated.Name != "John Doe" {
		t.Fatalf("untouched fields must survive, got name %s", updated.Name)
	}
}

func TestEmployeeDeactivate_KeepsRecord(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	deactivated, err := svc.Deactivate(context.Background(), "1")
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if deactivated.Status != domain.EmployeeInactive {
		t.Fatalf("expected inactive status, got %s", deactivated.Status)
	}

	// The record stays resolvable for history.
	if _, err := svc.Get(context.Background(), "1"); err != nil {
		t.Fatalf("deactivated employee should still resolve: %v", err)
	}
}

func TestEmployeeDepartments(t *testing.T) {
	svc := NewEmployeeService(memstore.NewEmployeeStore(), nil)

	departments, err := svc.Departments(context.Background())
	if err != nil {
		t.Fatalf("departments: %v", err)
	}
	want := []string{"Engineering", "HR", "Marketing", "Sales"}
	if len(departments) != len(want) {
		t.Fatalf("expected %d departments, got %v", len(want), departments)
	}
	for i, d := range want {
		if departments[i] != d {
			t.Fatalf("departments should be sorted, got %v", departments)
		}
	}
}
