package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/metrics"
	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// LeaveHandler serves the leave module.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

type leaveRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=annual sick personal maternity paternity"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Days       int    `json:"days" validate:"required,min=1"`
	Reason     string `json:"reason" validate:"required"`
}

// List returns leave requests. Employees see their module-wide read view;
// filters narrow by employee or status.
//
// @Summary      List leave requests
// @Tags         leave
// @Produce      json
// @Param        employee_id  query     string  false  "Filter by employee"
// @Param        status       query     string  false  "Filter by status"
// @Success      200          {array}   domain.LeaveRequest
// @Router       /api/leave [get]
func (h *LeaveHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context(), ports.LeaveFilter{
		EmployeeID: c.QueryParam("employee_id"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Submit files a new leave application.
//
// @Summary      Submit leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body  body      leaveRequest  true  "Leave application"
// @Success      201   {object}  domain.LeaveRequest
// @Router       /api/leave [post]
func (h *LeaveHandler) Submit(c echo.Context) error {
	var req leaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.Submit(c.Request().Context(), ports.LeaveInput{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Days:       req.Days,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

// Approve grants a pending request.
//
// @Summary      Approve leave request
// @Tags         leave
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  domain.LeaveRequest
// @Failure      422  {object}  map[string]string
// @Router       /api/leave/{id}/approve [post]
func (h *LeaveHandler) Approve(c echo.Context) error {
	return h.decide(c, domain.LeaveApproved)
}

// Reject declines a pending request.
//
// @Summary      Reject leave request
// @Tags         leave
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  domain.LeaveRequest
// @Failure      422  {object}  map[string]string
// @Router       /api/leave/{id}/reject [post]
func (h *LeaveHandler) Reject(c echo.Context) error {
	return h.decide(c, domain.LeaveRejected)
}

func (h *LeaveHandler) decide(c echo.Context, decision string) error {
	approver := middleware.CurrentUser(c)

	var (
		request *domain.LeaveRequest
		err     error
	)
	if decision == domain.LeaveApproved {
		request, err = h.service.Approve(c.Request().Context(), c.Param("id"), approver)
	} else {
		request, err = h.service.Reject(c.Request().Context(), c.Param("id"), approver)
	}
	if err != nil {
		return err
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(decision).Inc()
	return c.JSON(http.StatusOK, request)
}
