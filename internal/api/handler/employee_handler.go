package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// EmployeeHandler serves the employees module.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department" validate:"required"`
	Position   string  `json:"position"`
	JoinDate   string  `json:"join_date"`
	Salary     float64 `json:"salary" validate:"gte=0"`
}

type employeeUpdateRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary" validate:"gte=0"`
}

// List returns employees, optionally filtered.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        department  query     string  false  "Filter by department"
// @Param        status      query     string  false  "Filter by status"
// @Param        search      query     string  false  "Search name, email, position"
// @Success      200         {array}   domain.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context(), ports.EmployeeFilter{
		Department: c.QueryParam("department"),
		Status:     c.QueryParam("status"),
		Search:     c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get returns one employee by id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create adds an employee record.
//
// @Summary      Create employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      409   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		JoinDate:   req.JoinDate,
		Salary:     req.Salary,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update edits an employee record.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.EmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Deactivate marks an employee inactive. History stays intact, so this is the
// delete verb of the module.
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	employee, err := h.service.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Departments lists the distinct departments for filter dropdowns.
func (h *EmployeeHandler) Departments(c echo.Context) error {
	departments, err := h.service.Departments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}
