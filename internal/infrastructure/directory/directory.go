// Package directory provides the static user directory the console
// authenticates against. There is no registration: the three seeded demo
// accounts, one per role, are the whole population.
package directory

import (
	"context"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// DemoPassword is the shared password of the seeded accounts.
const DemoPassword = "12345"

type seedUser struct {
	id, email, name      string
	role                 domain.Role
	department, position string
}

var seeds = []seedUser{
	{"1", "sunil@gmail.com", "Sunil Kumar", domain.RoleAdmin, "Administration", "System Administrator"},
	{"2", "harendra@gmail.com", "Harendra Singh", domain.RoleHR, "Human Resources", "HR Manager"},
	{"3", "sahil@gmail.com", "Sahil Sharma", domain.RoleEmployee, "Engineering", "Software Developer"},
}

// Static is the in-memory directory. Records are immutable once built, so
// reads need no locking.
type Static struct {
	byEmail map[string]*domain.DirectoryUser
	byID    map[string]*domain.DirectoryUser
}

// New builds the directory, hashing the shared demo password at startup so no
// hash literal lives in source.
func New() (*Static, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	d := &Static{
		byEmail: make(map[string]*domain.DirectoryUser, len(seeds)),
		byID:    make(map[string]*domain.DirectoryUser, len(seeds)),
	}
	for _, s := range seeds {
		record := &domain.DirectoryUser{
			User: domain.User{
				ID:         s.id,
				Email:      s.email,
				Name:       s.name,
				Role:       s.role,
				Department: s.department,
				Position:   s.position,
				Avatar:     "/api/placeholder/40/40",
			},
			PasswordHash: string(hash),
		}
		d.byEmail[s.email] = record
		d.byID[s.id] = record
	}
	return d, nil
}

func (d *Static) FindByEmail(_ context.Context, email string) (*domain.DirectoryUser, error) {
	record, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	clone := *record
	return &clone, nil
}

func (d *Static) FindByID(_ context.Context, id string) (*domain.DirectoryUser, error) {
	record, ok := d.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *record
	return &clone, nil
}

func (d *Static) All(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(d.byID))
	for _, record := range d.byID {
		users = append(users, record.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
