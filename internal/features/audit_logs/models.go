package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"          gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Message     string     `json:"message"     gorm:"column:message"`
	UserID      *uuid.UUID `json:"userId"      gorm:"column:user_id"`
	WorkspaceID *string    `json:"workspaceId" gorm:"column:workspace_id"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
