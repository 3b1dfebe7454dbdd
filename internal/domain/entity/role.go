// Package entity contains the core business objects of the project.
package entity

// Role represents the account namespace a credential belongs to.
type Role string

const (
	// RolePrincipal is the school administrator. Principals are pre-provisioned.
	RolePrincipal Role = "principal"
	// RoleTeacher is created by a principal.
	RoleTeacher Role = "teacher"
	// RoleStudent is created by a principal and attached to a class.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePrincipal, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns RolePrincipal for the zero Role.
func RoleOrDefault(r Role) Role {
	if r == "" {
		return RolePrincipal
	}

	return r
}
