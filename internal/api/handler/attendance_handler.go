package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// AttendanceHandler serves the attendance module.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type checkInRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	TimeIn     string `json:"time_in" validate:"required"`
	Notes      string `json:"notes"`
}

type checkOutRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	TimeOut    string `json:"time_out" validate:"required"`
}

type attendanceUpdateRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=present absent late half-day"`
	Notes  string `json:"notes"`
}

// List returns attendance records, optionally filtered by date and employee.
//
// @Summary      List attendance
// @Tags         attendance
// @Produce      json
// @Param        date         query     string  false  "Filter by date (YYYY-MM-DD)"
// @Param        employee_id  query     string  false  "Filter by employee"
// @Success      200          {array}   domain.AttendanceRecord
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context(), ports.AttendanceFilter{
		Date:       c.QueryParam("date"),
		EmployeeID: c.QueryParam("employee_id"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// CheckIn opens a clock record for the day.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.CheckIn(c.Request().Context(), req.EmployeeID, req.Date, req.TimeIn, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// CheckOut closes the open clock record for the day.
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	var req checkOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.CheckOut(c.Request().Context(), req.EmployeeID, req.Date, req.TimeOut)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Update corrects a record's status or notes.
func (h *AttendanceHandler) Update(c echo.Context) error {
	var req attendanceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}
