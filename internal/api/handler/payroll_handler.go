package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// PayrollHandler serves the payroll module.
type PayrollHandler struct {
	service ports.PayrollService
}

func NewPayrollHandler(service ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// List returns pay statements, optionally filtered.
//
// @Summary      List payroll summaries
// @Tags         payroll
// @Produce      json
// @Param        employee_id  query     string  false  "Filter by employee"
// @Param        month        query     string  false  "Filter by month name"
// @Param        year         query     int     false  "Filter by year"
// @Success      200          {array}   domain.PayrollSummary
// @Router       /api/payroll [get]
func (h *PayrollHandler) List(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	summaries, err := h.service.List(c.Request().Context(), ports.PayrollFilter{
		EmployeeID: c.QueryParam("employee_id"),
		Month:      c.QueryParam("month"),
		Year:       year,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// Totals aggregates one month's run for the payroll overview cards.
//
// @Summary      Monthly payroll totals
// @Tags         payroll
// @Produce      json
// @Param        month  query     string  true  "Month name"
// @Param        year   query     int     true  "Year"
// @Success      200    {object}  ports.PayrollTotals
// @Router       /api/payroll/totals [get]
func (h *PayrollHandler) Totals(c echo.Context) error {
	month := c.QueryParam("month")
	year, err := strconv.Atoi(c.QueryParam("year"))
	if month == "" || err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "month and year are required")
	}

	totals, err := h.service.Totals(c.Request().Context(), month, year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}
