package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/ports"
)

// UserHandler serves the user-management module over the static directory.
// Accounts are fixed at startup, so the surface is read-only.
type UserHandler struct {
	directory ports.Directory
}

func NewUserHandler(directory ports.Directory) *UserHandler {
	return &UserHandler{directory: directory}
}

// List returns every directory account.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.directory.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one directory account by ID.
//
// @Summary      Get user account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	record, err := h.directory.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record.User)
}
