package types

import "fmt"

// Role represents the role of a user in the ministry
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleDG             Role = "dg"
	RoleMinister       Role = "minister"
	RoleDepartmentUser Role = "department_user"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleDG,
		RoleMinister,
		RoleDepartmentUser,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin,
		RoleDG,
		RoleMinister,
		RoleDepartmentUser:
		return true
	default:
		return false
	}
}

// IsLeadership reports whether the role has leadership privileges
// (task creation, report review, cross-department visibility).
func (r Role) IsLeadership() bool {
	switch r {
	case RoleAdmin, RoleDG, RoleMinister:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
