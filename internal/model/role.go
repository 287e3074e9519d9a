package model

// Package model contains the archive's domain types.
// Pure data structures with no persistence or transport dependencies,
// shared across the repository, storage and service layers.

// Role is the closed set of account roles known to the archive.
// Authorization decisions on roles live in the policy package; nothing
// outside it should compare role values directly.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaf   Role = "staf"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaf, RoleViewer:
		return true
	}
	return false
}
