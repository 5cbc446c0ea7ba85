package entities

// SessionRole is the operator role carried by the session provider.
//
// The role only attributes authorship; there is no authorization branching in
// this service.

type SessionRole string

const (
	SessionRoleOwner     SessionRole = "Owner"
	SessionRoleEmployee  SessionRole = "Employee"
	SessionRoleReception SessionRole = "Reception"
)

// UserSession identifies the current operator. Username namespaces every
// persisted collection.
type UserSession struct {
	Username string      `json:"username"`
	Role     SessionRole `json:"role"`
}

// IsZero reports whether no operator is logged in.
func (s UserSession) IsZero() bool {
	return s.Username == ""
}
