package workspaces_models

import (
	"time"

	users_enums "fieldlog/internal/features/users/enums"

	"github.com/google/uuid"
)

// Membership links a user to a workspace with exactly one role. The
// (workspace_id, user_id) pair is unique, so repeated joins can never
// produce a second record.
type Membership struct {
	ID          uuid.UUID                `json:"id"          gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WorkspaceID string                   `json:"workspaceId" gorm:"column:workspace_id;uniqueIndex:idx_memberships_workspace_user"`
	UserID      uuid.UUID                `json:"userId"      gorm:"column:user_id;uniqueIndex:idx_memberships_workspace_user"`
	Role        users_enums.WorkspaceRole `json:"role"`
	DisplayName string                   `json:"displayName" gorm:"column:display_name"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func (Membership) TableName() string {
	return "workspace_memberships"
}
