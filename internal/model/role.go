package model

// Role is the closed set of user roles. Authorization is an exact match on a
// single role; Can leaves room for multi-role or finer capabilities later
// without touching call sites.
type Role string

const (
	// RoleUser is the default role assigned on signup.
	RoleUser Role = "user"
	// RoleAdmin grants administrative capabilities.
	RoleAdmin Role = "admin"
)

// Action is a capability checked against a role.
type Action string

const (
	// ActionManageUsers allows listing and inspecting all users.
	ActionManageUsers Action = "manage_users"
	// ActionManageMembers allows changing project membership.
	ActionManageMembers Action = "manage_members"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Can reports whether the role grants the given action.
func (r Role) Can(action Action) bool {
	switch action {
	case ActionManageUsers, ActionManageMembers:
		return r == RoleAdmin
	default:
		return false
	}
}
