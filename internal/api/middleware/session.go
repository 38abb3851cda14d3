package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/api/metrics"
	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/session"
)

// userContextKey is where the hydrated user lives in the echo context.
const userContextKey = "session_user"

// Session hydrates the authenticated user from the cookie store into the
// request context. It never rejects: requests without a valid session simply
// carry no user, and downstream guards decide what that means.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hadToken := store.CurrentToken(c) != ""
			if user := store.CurrentUser(c); user != nil {
				c.Set(userContextKey, user)
			} else if hadToken {
				// A token was presented but did not survive decoding; the
				// store has already purged the stale cookies.
				metrics.SessionDecodeFailuresTotal.Inc()
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user hydrated by the Session middleware, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
