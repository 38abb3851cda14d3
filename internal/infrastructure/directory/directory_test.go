package directory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/qubitara/hr-console/internal/core/domain"
)

func TestNew_SeedsThreeAccounts(t *testing.T) {
	dir, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	users, err := dir.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded accounts, got %d", len(users))
	}

	roles := map[string]domain.Role{
		"sunil@gmail.com":    domain.RoleAdmin,
		"harendra@gmail.com": domain.RoleHR,
		"sahil@gmail.com":    domain.RoleEmployee,
	}
	for email, want := range roles {
		record, err := dir.FindByEmail(context.Background(), email)
		if err != nil {
			t.Fatalf("find %s: %v", email, err)
		}
		if record.Role != want {
			t.Errorf("%s role = %s, want %s", email, record.Role, want)
		}
	}
}

func TestPasswordHash_MatchesDemoPassword(t *testing.T) {
	dir, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	record, err := dir.FindByEmail(context.Background(), "sunil@gmail.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if record.PasswordHash == DemoPassword {
		t.Fatalf("password must not be stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(DemoPassword)); err != nil {
		t.Fatalf("hash should verify against the demo password: %v", err)
	}
}

func TestFind_UnknownEmail(t *testing.T) {
	dir, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Email lookups sit on the credential path and stay unenumerable; ID
	// lookups serve authenticated user management and say what happened.
	if _, err := dir.FindByEmail(context.Background(), "nobody@gmail.com"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := dir.FindByID(context.Background(), "99"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPasswordHash_HiddenFromJSON(t *testing.T) {
	dir, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	record, err := dir.FindByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), record.PasswordHash) {
		t.Fatalf("serialized record leaks the password hash: %s", raw)
	}
}
