package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// PerformanceHandler serves the performance module.
type PerformanceHandler struct {
	service ports.PerformanceService
}

func NewPerformanceHandler(service ports.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: service}
}

type goalPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=not-started in-progress completed"`
	DueDate     string `json:"due_date"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
}

type reviewRequest struct {
	EmployeeID    string        `json:"employee_id" validate:"required"`
	ReviewPeriod  string        `json:"review_period" validate:"required"`
	OverallRating float64       `json:"overall_rating" validate:"required,min=1,max=5"`
	Goals         []goalPayload `json:"goals" validate:"dive"`
	Feedback      string        `json:"feedback"`
	ReviewDate    string        `json:"review_date"`
}

// List returns reviews, optionally for one employee.
//
// @Summary      List performance reviews
// @Tags         performance
// @Produce      json
// @Param        employee_id  query     string  false  "Filter by employee"
// @Success      200          {array}   domain.PerformanceReview
// @Router       /api/performance [get]
func (h *PerformanceHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context(), c.QueryParam("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get returns one review by id.
func (h *PerformanceHandler) Get(c echo.Context) error {
	review, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Create records a new review cycle for an employee.
//
// @Summary      Create performance review
// @Tags         performance
// @Accept       json
// @Produce      json
// @Param        body  body      reviewRequest  true  "Review details"
// @Success      201   {object}  domain.PerformanceReview
// @Router       /api/performance [post]
func (h *PerformanceHandler) Create(c echo.Context) error {
	review, err := h.bind(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), *review)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits an existing review.
func (h *PerformanceHandler) Update(c echo.Context) error {
	review, err := h.bind(c)
	if err != nil {
		return err
	}
	review.ID = c.Param("id")
	updated, err := h.service.Update(c.Request().Context(), *review)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PerformanceHandler) bind(c echo.Context) (*domain.PerformanceReview, error) {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goals := make([]domain.Goal, 0, len(req.Goals))
	for _, g := range req.Goals {
		status := g.Status
		if status == "" {
			status = domain.GoalNotStarted
		}
		goals = append(goals, domain.Goal{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Status:      status,
			DueDate:     g.DueDate,
			Progress:    g.Progress,
		})
	}

	return &domain.PerformanceReview{
		EmployeeID:    req.EmployeeID,
		ReviewPeriod:  req.ReviewPeriod,
		OverallRating: req.OverallRating,
		Goals:         goals,
		Feedback:      req.Feedback,
		ReviewDate:    req.ReviewDate,
		ReviewerID:    middleware.CurrentUser(c).ID,
	}, nil
}
