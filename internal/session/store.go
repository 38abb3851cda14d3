package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// Cookie slots used by the console. All three are written together on login
// and removed together on logout.
const (
	AuthCookie = "qubitara_auth_token"
	UserCookie = "qubitara_user_data"
	CSRFCookie = "qubitara_csrf_token"
)

// Store persists the session across requests in the browser cookie jar.
// The auth and user cookies carry signed tokens and stay HttpOnly; the CSRF
// cookie is the raw value so client scripts can echo it back in headers.
type Store struct {
	codec  *Codec
	secure bool
}

// NewStore creates a cookie store. secure should be true in production-like
// environments only, so local HTTP development keeps working.
func NewStore(codec *Codec, secure bool) *Store {
	return &Store{codec: codec, secure: secure}
}

// Persist writes the session token, user snapshot, and CSRF cookies.
func (s *Store) Persist(c echo.Context, user *domain.User) (*Payload, error) {
	token, payload, err := s.codec.EncodeSession(user)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.codec.EncodeUser(user)
	if err != nil {
		return nil, err
	}

	c.SetCookie(s.cookie(AuthCookie, token, true))
	c.SetCookie(s.cookie(UserCookie, snapshot, true))
	c.SetCookie(s.cookie(CSRFCookie, payload.CSRFToken, false))
	return payload, nil
}

// CurrentUser returns the authenticated user, or nil. A user is authenticated
// only when both the session token and the matching user snapshot decode;
// anything less reads as logged out and purges the stale cookies.
func (s *Store) CurrentUser(c echo.Context) *domain.User {
	payload := s.currentPayload(c)
	if payload == nil {
		return nil
	}

	cookie, err := c.Cookie(UserCookie)
	if err != nil {
		s.Clear(c)
		return nil
	}
	user, err := s.codec.DecodeUser(cookie.Value)
	if err != nil || user.ID != payload.UserID {
		s.Clear(c)
		return nil
	}
	return user
}

// CurrentToken returns the raw session token cookie, or empty.
func (s *Store) CurrentToken(c echo.Context) string {
	cookie, err := c.Cookie(AuthCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// CurrentCSRF returns the raw CSRF cookie, or empty.
func (s *Store) CurrentCSRF(c echo.Context) string {
	cookie, err := c.Cookie(CSRFCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Clear removes all three cookie slots.
func (s *Store) Clear(c echo.Context) {
	for _, name := range []string{AuthCookie, UserCookie, CSRFCookie} {
		expired := s.cookie(name, "", true)
		expired.MaxAge = -1
		expired.Expires = time.Unix(0, 0)
		c.SetCookie(expired)
	}
}

func (s *Store) currentPayload(c echo.Context) *Payload {
	token := s.CurrentToken(c)
	if token == "" {
		return nil
	}
	payload, err := s.codec.DecodeSession(token)
	if err != nil {
		s.Clear(c)
		return nil
	}
	return payload
}

func (s *Store) cookie(name, value string, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(s.codec.ttl),
		MaxAge:   int(s.codec.ttl / time.Second),
		Secure:   s.secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteStrictMode,
	}
}
