package session

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
	"github.com/qubitara/hr-console/internal/notify"
)

// Manager orchestrates login and logout over the credential validator and the
// cookie store, and publishes typed auth events for audit and metrics.
// It holds no per-user state of its own: the cookies are the session.
type Manager struct {
	auth     ports.AuthService
	store    *Store
	notifier *notify.Notifier
}

func NewManager(auth ports.AuthService, store *Store, notifier *notify.Notifier) *Manager {
	return &Manager{auth: auth, store: store, notifier: notifier}
}

// Login authenticates, persists the session cookies, and returns the user
// together with the role landing path to redirect to.
func (m *Manager) Login(c echo.Context, email, password string) (*domain.User, string, error) {
	user, err := m.auth.Authenticate(c.Request().Context(), email, password)
	if err != nil {
		kind := notify.LoginFailed
		if errors.Is(err, domain.ErrTooManyAttempts) {
			kind = notify.LoginThrottled
		}
		m.notifier.Publish(notify.AuthEvent{Kind: kind, Email: email})
		return nil, "", err
	}

	if _, err := m.store.Persist(c, user); err != nil {
		return nil, "", err
	}

	m.notifier.Publish(notify.AuthEvent{
		Kind:   notify.LoginSucceeded,
		Email:  user.Email,
		UserID: user.ID,
		Role:   user.Role,
	})
	return user, user.Role.HomePath(), nil
}

// Logout clears the session cookies and marks the response uncacheable so
// protected pages cannot be replayed from history after signing out.
func (m *Manager) Logout(c echo.Context) {
	if user := m.store.CurrentUser(c); user != nil {
		m.notifier.Publish(notify.AuthEvent{
			Kind:   notify.LoggedOut,
			Email:  user.Email,
			UserID: user.ID,
			Role:   user.Role,
		})
	}
	m.store.Clear(c)
	c.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
}

// Current hydrates the authenticated user from the cookie store alone.
func (m *Manager) Current(c echo.Context) *domain.User {
	return m.store.CurrentUser(c)
}
