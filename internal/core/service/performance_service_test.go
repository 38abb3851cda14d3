package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/infrastructure/memstore"
)

func newTestPerformanceService() *PerformanceService {
	return NewPerformanceService(memstore.NewPerformanceStore(), memstore.NewEmployeeStore())
}

func TestPerformanceList_ByEmployee(t *testing.T) {
	svc := newTestPerformanceService()

	reviews, err := svc.List(context.Background(), "2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 1 || reviews[0].EmployeeID != "2" {
		t.Fatalf("expected employee 2's single review, got %+v", reviews)
	}
}

func TestPerformanceCreate(t *testing.T) {
	svc := newTestPerformanceService()

	created, err := svc.Create(context.Background(), domain.PerformanceReview{
		EmployeeID:    "1",
		ReviewPeriod:  "Q1 2024",
		OverallRating: 4.2,
		Goals: []domain.Goal{
			{ID: "1", Title: "Lead the migration project", Status: domain.GoalInProgress, Progress: 40},
		},
		Feedback:   "Strong start to the quarter.",
		ReviewerID: "2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created review should get an ID")
	}
}

func TestPerformanceCreate_Validation(t *testing.T) {
	svc := newTestPerformanceService()

	cases := []struct {
		name   string
		review domain.PerformanceReview
		want   error
	}{
		{
			"rating above scale",
			domain.PerformanceReview{EmployeeID: "1", ReviewPeriod: "Q1 2024", OverallRating: 5.5},
			domain.ErrInvalidInput,
		},
		{
			"rating below scale",
			domain.PerformanceReview{EmployeeID: "1", ReviewPeriod: "Q1 2024", OverallRating: 0.5},
			domain.ErrInvalidInput,
		},
		{
			"missing period",
			domain.PerformanceReview{EmployeeID: "1", OverallRating: 3},
			domain.ErrInvalidInput,
		},
		{
			"unknown employee",
			domain.PerformanceReview{EmployeeID: "999", ReviewPeriod: "Q1 2024", OverallRating: 3},
			domain.ErrEmployeeNotFound,
		},
		{
			"goal progress out of range",
			domain.PerformanceReview{
				EmployeeID:    "1",
				ReviewPeriod:  "Q1 2024",
				OverallRating: 3,
				Goals:         []domain.Goal{{ID: "1", Title: "g", Progress: 120}},
			},
			domain.ErrInvalidInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.review); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPerformanceUpdate_UnknownReview(t *testing.T) {
	svc := newTestPerformanceService()

	_, err := svc.Update(context.Background(), domain.PerformanceReview{
		ID:            "999",
		EmployeeID:    "1",
		ReviewPeriod:  "Q1 2024",
		OverallRating: 3,
	})
	if !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
