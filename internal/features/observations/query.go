package observations

import (
	users_enums "fieldlog/internal/features/users/enums"

	"github.com/google/uuid"
)

// ListQuery describes which observations a caller may see and in what
// order. It is plain data so visibility decisions can be tested without a
// database.
type ListQuery struct {
	WorkspaceID string
	// restricts results to the caller's own records
	OwnerOnly bool
	OwnerID   uuid.UUID
	OrderBy   string
}

const (
	orderByObserverThenStart = "observer ASC, start_time ASC"
	orderByStart             = "start_time ASC"
)

// BuildListQuery maps a resolved workspace role to the visibility window for
// observation listings. Managers and admins see the whole workspace grouped
// by observer, unless they ask for their own records only; everyone else
// sees only their own records in session order. Same inputs always produce
// the same query.
func BuildListQuery(
	role users_enums.WorkspaceRole, userID uuid.UUID, workspaceID string, onlyMine bool,
) ListQuery {
	if role.CanSeeAllRecords() && !onlyMine {
		return ListQuery{
			WorkspaceID: workspaceID,
			OrderBy:     orderByObserverThenStart,
		}
	}

	return ListQuery{
		WorkspaceID: workspaceID,
		OwnerOnly:   true,
		OwnerID:     userID,
		OrderBy:     orderByStart,
	}
}
