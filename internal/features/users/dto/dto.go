package users_dto

import (
	users_enums "fieldlog/internal/features/users/enums"
	users_models "fieldlog/internal/features/users/models"

	"github.com/google/uuid"
)

type SignInRequest struct {
	Email    string `json:"email"    binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type SignUpRequest struct {
	Email       string `json:"email"       binding:"required,email" example:"user@example.com"`
	DisplayName string `json:"displayName" binding:"required"       example:"Jane Surveyor"`
	Password    string `json:"password"    binding:"required,min=8" example:"password123"`
}

type SignInAnonymousRequest struct {
	DisplayName string `json:"displayName" binding:"required" example:"Guest Observer"`
}

type SignInResponse struct {
	Token       string               `json:"token"`
	UserID      uuid.UUID            `json:"userId"`
	Email       string               `json:"email"`
	DisplayName string               `json:"displayName"`
	Role        users_enums.UserRole `json:"role"`
	IsAnonymous bool                 `json:"isAnonymous"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type UpdateDisplayNameRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

type UserProfileResponse struct {
	ID          uuid.UUID              `json:"id"`
	Email       string                 `json:"email"`
	DisplayName string                 `json:"displayName"`
	Role        users_enums.UserRole   `json:"role"`
	Status      users_enums.UserStatus `json:"status"`
	IsAnonymous bool                   `json:"isAnonymous"`
}

type UpdateSettingsRequest struct {
	IsAllowExternalRegistrations      *bool `json:"isAllowExternalRegistrations"`
	IsAllowAnonymousJoin              *bool `json:"isAllowAnonymousJoin"`
	IsMemberAllowedToCreateWorkspaces *bool `json:"isMemberAllowedToCreateWorkspaces"`
}

func ProfileFromUser(user *users_models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Status:      user.Status,
		IsAnonymous: user.IsAnonymous,
	}
}
