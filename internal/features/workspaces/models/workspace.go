package workspaces_models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Workspace identifiers are chosen by the caller, so they are validated
// before anything touches storage.
var workspaceIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

type Workspace struct {
	ID        string    `json:"id"        gorm:"primary_key"`
	Name      string    `json:"name"`
	CreatedBy uuid.UUID `json:"createdBy" gorm:"column:created_by"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func IsValidWorkspaceID(workspaceID string) bool {
	return workspaceIDPattern.MatchString(workspaceID)
}
