package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/middleware"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/session"
)

// AuthHandler serves the login/logout surface and session introspection.
type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

// Login authenticates the demo credentials and sets the session cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, redirect, err := h.sessions.Login(c, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{User: user, Redirect: redirect})
}

// Logout clears the session cookies.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c)
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/login"})
}

// LoginPage is the anonymous entry point. An already-authenticated browser is
// sent straight to its role landing path.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if user := middleware.CurrentUser(c); user != nil {
		return c.Redirect(http.StatusFound, user.Role.HomePath())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "login required"})
}

// Me returns the current session's user snapshot.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, user)
}

// Modules lists the dashboard modules visible to the current role, driving
// sidebar navigation: unpermitted modules are absent, not greyed out.
//
// @Summary      Visible modules
// @Tags         auth
// @Produce      json
// @Success      200  {array}   domain.Module
// @Failure      401  {object}  map[string]string
// @Router       /api/modules [get]
func (h *AuthHandler) Modules(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, domain.ModulesFor(user.Role))
}
