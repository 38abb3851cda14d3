package domain

import "fmt"

// Role is the sole axis of authorization in the console.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleHR, RoleEmployee}

// ParseRole converts a string to a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// HomePath returns the landing path a role is redirected to after login.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleHR:
		return "/hr"
	case RoleEmployee:
		return "/employee"
	}
	return "/login"
}

// User models an authenticated actor in the console. Records are issued from
// the static directory and never mutated afterwards.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// DirectoryUser is a directory record with credential material attached.
// Only the embedded User ever leaves the authentication layer.
type DirectoryUser struct {
	User
	PasswordHash string `json:"-"`
}
