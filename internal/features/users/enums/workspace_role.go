package users_enums

// WorkspaceRole is the per-workspace privilege level. RoleNone is the
// sentinel for "no membership record" and is never stored.
type WorkspaceRole string

const (
	WorkspaceRoleNone     WorkspaceRole = "NONE"
	WorkspaceRoleObserver WorkspaceRole = "OBSERVER"
	WorkspaceRoleManager  WorkspaceRole = "MANAGER"
	WorkspaceRoleAdmin    WorkspaceRole = "ADMIN"
)

// IsValid validates a role as storable on a membership record.
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleObserver, WorkspaceRoleManager, WorkspaceRoleAdmin:
		return true
	default:
		return false
	}
}

// CanSeeAllRecords reports whether the role grants visibility over every
// observation in the workspace rather than only the caller's own.
func (r WorkspaceRole) CanSeeAllRecords() bool {
	return r == WorkspaceRoleManager || r == WorkspaceRoleAdmin
}
