package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/session"
)

const testSecret = "qubitara_secret_key_2024"

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func contextWithUser(role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(userContextKey, &domain.User{ID: "1", Role: role})
	}
	return c, rec
}

func TestRequireRoles_AnonymousRedirectsToLogin(t *testing.T) {
	c, rec := contextWithUser("")

	if err := RequireRoles(domain.RoleAdmin)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestRequireRoles_WrongRoleRedirectsHome(t *testing.T) {
	c, rec := contextWithUser(domain.RoleEmployee)

	if err := RequireRoles(domain.RoleAdmin)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/employee" {
		t.Fatalf("employee should bounce to /employee, got %s", loc)
	}
}

func TestRequireRoles_AllowedRolePasses(t *testing.T) {
	c, rec := contextWithUser(domain.RoleHR)

	if err := RequireRoles(domain.RoleAdmin, domain.RoleHR)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth_AnonymousGets401(t *testing.T) {
	c, _ := contextWithUser("")

	err := RequireAuth()(okHandler)(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequirePermission(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		module  domain.Module
		action  domain.Action
		wantErr error
	}{
		{"hr may approve leave", domain.RoleHR, domain.ModuleLeave, domain.ActionApprove, nil},
		{"employee may request leave", domain.RoleEmployee, domain.ModuleLeave, domain.ActionCreate, nil},
		{"employee may not approve leave", domain.RoleEmployee, domain.ModuleLeave, domain.ActionApprove, domain.ErrForbidden},
		{"hr may not delete employees", domain.RoleHR, domain.ModuleEmployees, domain.ActionDelete, domain.ErrForbidden},
		{"employee may not read payroll", domain.RoleEmployee, domain.ModulePayroll, domain.ActionRead, domain.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := contextWithUser(tc.role)
			err := RequirePermission(tc.module, tc.action)(okHandler)(c)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSessionMiddleware_HydratesUser(t *testing.T) {
	store := session.NewStore(session.NewCodec(testSecret, 0, nil), false)

	// Issue cookies through a throwaway context.
	e := echo.New()
	seedRec := httptest.NewRecorder()
	seed := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), seedRec)
	if _, err := store.Persist(seed, &domain.User{ID: "2", Email: "harendra@gmail.com", Role: domain.RoleHR}); err != nil {
		t.Fatalf("persist: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/hr", nil)
	for _, cookie := range seedRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var hydrated *domain.User
	err := Session(store)(func(c echo.Context) error {
		hydrated = CurrentUser(c)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hydrated == nil || hydrated.ID != "2" || hydrated.Role != domain.RoleHR {
		t.Fatalf("expected hydrated hr user, got %+v", hydrated)
	}
}

func TestSessionMiddleware_IgnoresInvalidToken(t *testing.T) {
	store := session.NewStore(session.NewCodec(testSecret, 0, nil), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.AuthCookie, Value: "garbage"})
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := Session(store)(func(c echo.Context) error {
		if CurrentUser(c) != nil {
			t.Fatalf("invalid token must not hydrate a user")
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
