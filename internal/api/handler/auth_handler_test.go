package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/notify"
	"github.com/qubitara/hr-console/internal/session"
)

const testSecret = "qubitara_secret_key_2024"

type stubAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func adminUser() *domain.User {
	return &domain.User{
		ID:    "1",
		Email: "sunil@gmail.com",
		Name:  "Sunil Kumar",
		Role:  domain.RoleAdmin,
	}
}

func newAuthHandler(auth *stubAuthService) *AuthHandler {
	store := session.NewStore(session.NewCodec(testSecret, 0, nil), false)
	manager := session.NewManager(auth, store, notify.NewNotifier(zerolog.Nop()))
	return NewAuthHandler(manager)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return adminUser(), nil
		},
	})
	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"email":"sunil@gmail.com","password":"12345"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User     *domain.User `json:"user"`
		Redirect string       `json:"redirect"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/admin" {
		t.Fatalf("expected /admin redirect, got %s", resp.Redirect)
	}
	if resp.User == nil || resp.User.Email != "sunil@gmail.com" {
		t.Fatalf("unexpected user %+v", resp.User)
	}
	if got := len(rec.Result().Cookies()); got != 3 {
		t.Fatalf("expected 3 session cookies, got %d", got)
	}
}

func TestLogin_InvalidCredentialsPropagates(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})
	c, _ := newJSONContext(t, http.MethodPost, "/login", `{"email":"sunil@gmail.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_ValidationRejectsBadPayload(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatal("authenticate must not run on invalid payload")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"sunil@gmail.com"}`},
		{"not an email", `{"email":"sunil","password":"12345"}`},
		{"empty body", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/login", tc.body)
			err := h.Login(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestLogout_ClearsCookies(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return adminUser(), nil
		},
	})
	c, rec := newJSONContext(t, http.MethodPost, "/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge != -1 {
			t.Errorf("cookie %s should be expired", cookie.Name)
		}
	}
}

func TestLoginPage_RedirectsAuthenticatedUser(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(t, http.MethodGet, "/login", "")
	c.Set("session_user", &domain.User{ID: "3", Role: domain.RoleEmployee})

	if err := h.LoginPage(c); err != nil {
		t.Fatalf("login page: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/employee" {
		t.Fatalf("expected /employee, got %s", loc)
	}
}

func TestMe_RequiresSession(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(t, http.MethodGet, "/me", "")

	err := h.Me(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestModules_FollowsRole(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(t, http.MethodGet, "/api/modules", "")
	c.Set("session_user", &domain.User{ID: "3", Role: domain.RoleEmployee})

	if err := h.Modules(c); err != nil {
		t.Fatalf("modules: %v", err)
	}

	var modules []domain.Module
	if err := json.Unmarshal(rec.Body.Bytes(), &modules); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(modules) != 6 {
		t.Fatalf("employee should see 6 modules, got %d", len(modules))
	}
	for _, m := range modules {
		if m == domain.ModulePayroll {
			t.Fatalf("employee modules must not include payroll")
		}
	}
}
