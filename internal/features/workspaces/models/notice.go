package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// Notice is the single pinned announcement of a workspace.
type Notice struct {
	WorkspaceID string    `json:"workspaceId" gorm:"column:workspace_id;primary_key"`
	Text        string    `json:"text"`
	UpdatedBy   uuid.UUID `json:"updatedBy"   gorm:"column:updated_by"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Notice) TableName() string {
	return "workspace_notices"
}
