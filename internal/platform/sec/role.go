// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole is the authorization level asserted by the identity provider.
type UserRole string

const (
	// Moderates comments and reads feedback
	RoleAdmin UserRole = "admin"

	// Default role for any signed-in reader; authorship is tracked separately
	RoleReader UserRole = "reader"
)

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleReader, "":
		return 10
	default:
		return 0
	}
}

// IsAdmin reports whether the claims carry the admin role.
func (c *AuthClaims) IsAdmin() bool {
	return c != nil && UserRole(c.Role) == RoleAdmin
}
