package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/metrics"
	"github.com/qubitara/hr-console/internal/core/domain"
)

// RequireRoles guards a landing route. Anonymous requests are redirected to
// the login entry point; authenticated users whose role is outside the
// allowed set are redirected to their own role's landing path.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}
			if !slices.Contains(allowed, user.Role) {
				metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
				return c.Redirect(http.StatusFound, user.Role.HomePath())
			}
			return next(c)
		}
	}
}

// RequireAuth guards an API route: anonymous requests get 401 instead of a
// redirect, so programmatic clients see a clean status.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequirePermission enforces the permission table on an API module route.
// The caller must already be authenticated (RequireAuth runs first).
func RequirePermission(module domain.Module, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !domain.HasPermission(user.Role, module, action) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
