package service

import (
	"context"
	"time"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// EmployeeService implements staff listings and administration.
type EmployeeService struct {
	repo ports.EmployeeRepository
	now  func() time.Time
}

func NewEmployeeService(repo ports.EmployeeRepository, now func() time.Time) *EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &EmployeeService{repo: repo, now: now}
}

func (s *EmployeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	return s.repo.List(ctx, filter)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if input.Name == "" || input.Email == "" || input.Department == "" {
		return nil, domain.ErrInvalidInput
	}
	joinDate := input.JoinDate
	if joinDate == "" {
		joinDate = s.now().UTC().Format("2006-01-02")
	}
	return s.repo.Create(ctx, &domain.Employee{
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
		Position:   input.Position,
		Status:     domain.EmployeeActive,
		JoinDate:   joinDate,
		Salary:     input.Salary,
	})
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Email != "" {
		employee.Email = input.Email
	}
	if input.Department != "" {
		employee.Department = input.Department
	}
	if input.Position != "" {
		employee.Position = input.Position
	}
	if input.Salary > 0 {
		employee.Salary = input.Salary
	}
	return s.repo.Update(ctx, employee)
}

// Deactivate marks an employee inactive instead of deleting the record, so
// attendance and payroll history stays resolvable.
func (s *EmployeeService) Deactivate(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	employee.Status = domain.EmployeeInactive
	return s.repo.Update(ctx, employee)
}

func (s *EmployeeService) Departments(ctx context.Context) ([]string, error) {
	return s.repo.Departments(ctx)
}
