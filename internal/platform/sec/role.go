// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package sec

// # Account Roles

// Role represents the authorization level granted to an account.
//
// Gallerim is a personal CMS: there is exactly one admin in practice, but the
// role ladder leaves room for a future read-only curator account.
type Role string

const (
	// Unrestricted access to the admin CMS
	RoleAdmin Role = "admin"

	// Read-only access to draft content
	RoleCurator Role = "curator"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleCurator:
		return 10
	default:
		return 0
	}
}
