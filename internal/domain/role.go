package domain

import "slices"

// Role represents a user role within a tenant
type Role string

const (
	// RoleAdmin can manage the tenant, including subscription upgrades
	RoleAdmin Role = "ADMIN"

	// RoleMember can create and manage notes within the tenant
	RoleMember Role = "MEMBER"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleMember}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}
