package users_models

import (
	users_enums "fieldlog/internal/features/users/enums"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `json:"id"`
	// login identifier; generated for anonymous participants
	Email                string                 `json:"email"`
	DisplayName          string                 `json:"displayName" gorm:"column:display_name"`
	HashedPassword       *string                `json:"-"           gorm:"column:hashed_password"`
	PasswordCreationTime time.Time              `json:"-"           gorm:"column:password_creation_time"`
	Role                 users_enums.UserRole   `json:"role"`
	Status               users_enums.UserStatus `json:"status"`
	IsAnonymous          bool                   `json:"isAnonymous" gorm:"column:is_anonymous"`
	CreatedAt            time.Time              `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Permission methods
func (u *User) CanCreateWorkspaces(settings *UsersSettings) bool {
	if u.Role == users_enums.UserRoleAdmin {
		return true
	}
	if u.IsAnonymous {
		return false
	}
	return u.Role == users_enums.UserRoleMember && settings.IsMemberAllowedToCreateWorkspaces
}

func (u *User) CanUpdateSettings() bool {
	return u.Role == users_enums.UserRoleAdmin
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
