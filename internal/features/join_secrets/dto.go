package join_secrets

import (
	"time"

	"github.com/google/uuid"
)

type SetJoinSecretRequest struct {
	Secret string `json:"secret" binding:"required,min=8,max=128"`
}

// JoinSecretStatusResponse reports whether a secret is configured without
// ever exposing the digest.
type JoinSecretStatusResponse struct {
	WorkspaceID string    `json:"workspaceId"`
	IsSet       bool      `json:"isSet"`
	UpdatedBy   uuid.UUID `json:"updatedBy,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
