package join_secrets

import (
	"time"

	"github.com/google/uuid"
)

// JoinSecret stores only the bcrypt digest of a workspace's shared join
// secret. The plaintext never touches storage and is never returned.
type JoinSecret struct {
	WorkspaceID string    `json:"workspaceId" gorm:"column:workspace_id;primary_key"`
	SecretHash  string    `json:"-"           gorm:"column:secret_hash"`
	UpdatedBy   uuid.UUID `json:"updatedBy"   gorm:"column:updated_by"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (JoinSecret) TableName() string {
	return "workspace_join_secrets"
}
