package session

import (
	"fmt"
	"strings"

	"github.com/pathshala/admin/core"
)

// Role is the closed set of dashboard roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
)

var AllRoles = []Role{RoleAdmin, RoleSupervisor}

// ParseRole returns the Role matching `s`, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	s = core.CleanString(s, true /* lower */)
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is a snapshot of the authentication state.
type Session struct {
	Token string `json:"token,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.Role != ""
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Role == RoleAdmin
}

func (s Session) IsSupervisor() bool {
	return s.IsAuthenticated() && s.Role == RoleSupervisor
}

// Credentials is what a user types in the login form.
// Identifier is the UDISE code for admins and the username for supervisors.
type Credentials struct {
	Role       Role   `json:"role" validate:"required,oneof=admin supervisor"`
	Identifier string `json:"identifier" validate:"notblank"`
	Password   string `json:"password" validate:"required"`
}

func (c *Credentials) Clean() {
	c.Role = Role(core.CleanString(string(c.Role), true /* lower */))
	c.Identifier = core.CleanString(c.Identifier)
}

// LoginResult is what a successful login hands over to the Manager.
type LoginResult struct {
	Token   string
	Role    Role
	Message string
}

func (r LoginResult) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.Role, r.Message))
}
