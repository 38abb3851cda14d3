package service

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// PayrollService implements pay statement listings and monthly aggregates.
type PayrollService struct {
	repo ports.PayrollRepository
}

func NewPayrollService(repo ports.PayrollRepository) *PayrollService {
	return &PayrollService{repo: repo}
}

func (s *PayrollService) List(ctx context.Context, filter ports.PayrollFilter) ([]domain.PayrollSummary, error) {
	return s.repo.List(ctx, filter)
}

func (s *PayrollService) Totals(ctx context.Context, month string, year int) (*ports.PayrollTotals, error) {
	summaries, err := s.repo.List(ctx, ports.PayrollFilter{Month: month, Year: year})
	if err != nil {
		return nil, err
	}

	totals := &ports.PayrollTotals{Month: month, Year: year, Employees: len(summaries)}
	for _, p := range summaries {
		totals.Gross += p.BasicSalary + p.Allowances
		totals.Net += p.NetSalary
	}
	return totals, nil
}
