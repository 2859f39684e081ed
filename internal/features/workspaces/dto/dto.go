package workspaces_dto

import (
	"time"

	users_enums "fieldlog/internal/features/users/enums"

	"github.com/google/uuid"
)

type BootstrapWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=128" example:"Spring Survey 2026"`
}

type BootstrapWorkspaceResponse struct {
	ID      string                    `json:"id"`
	Name    string                    `json:"name"`
	Role    users_enums.WorkspaceRole `json:"role"`
	Created bool                      `json:"created"`
}

type JoinWorkspaceRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=128"`
	Secret      string `json:"secret"      binding:"required"`
}

type JoinWorkspaceResponse struct {
	WorkspaceID string                    `json:"workspaceId"`
	UserID      uuid.UUID                 `json:"userId"`
	Role        users_enums.WorkspaceRole `json:"role"`
	// set when the join established a new anonymous identity
	Token string `json:"token,omitempty"`
}

type WorkspaceRoleResponse struct {
	WorkspaceID string                    `json:"workspaceId"`
	Role        users_enums.WorkspaceRole `json:"role"`
	// role after the super admin override is applied
	EffectiveRole users_enums.WorkspaceRole `json:"effectiveRole"`
}

type ChangeMemberRoleRequest struct {
	Role users_enums.WorkspaceRole `json:"role" binding:"required" example:"MANAGER"`
}

type MemberResponse struct {
	UserID      uuid.UUID                 `json:"userId"`
	DisplayName string                    `json:"displayName"`
	Role        users_enums.WorkspaceRole `json:"role"`
	IsAnonymous bool                      `json:"isAnonymous"`
	JoinedAt    time.Time                 `json:"joinedAt"`
}

type GetMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type NoticeResponse struct {
	WorkspaceID string    `json:"workspaceId"`
	Text        string    `json:"text"`
	UpdatedBy   uuid.UUID `json:"updatedBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpdateNoticeRequest struct {
	Text string `json:"text" binding:"max=4000"`
}
