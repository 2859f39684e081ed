package users_testing

import (
	"fmt"
	"testing"
	"time"

	users_dto "fieldlog/internal/features/users/dto"
	users_enums "fieldlog/internal/features/users/enums"
	users_models "fieldlog/internal/features/users/models"
	users_services "fieldlog/internal/features/users/services"
	"fieldlog/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// CreateTestUser registers a fresh member account and returns it with a token.
func CreateTestUser(t *testing.T) (*users_models.User, string) {
	EnsureRegistrationsEnabled(t)

	userService := users_services.GetUserService()

	request := &users_dto.SignUpRequest{
		Email:       fmt.Sprintf("user-%s@test.local", uuid.New().String()),
		DisplayName: "Test User",
		Password:    "password123",
	}

	user, err := userService.SignUp(request)
	require.NoError(t, err)

	token, err := userService.GenerateAccessToken(user)
	require.NoError(t, err)

	return user, token
}

// CreateTestAdminUser creates a global admin directly through storage.
func CreateTestAdminUser(t *testing.T) (*users_models.User, string) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	hashedPasswordValue := string(hashedPassword)
	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                fmt.Sprintf("admin-%s@test.local", uuid.New().String()),
		DisplayName:          "Test Admin",
		HashedPassword:       &hashedPasswordValue,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 users_enums.UserRoleAdmin,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	require.NoError(t, storage.GetDb().Create(user).Error)

	token, err := users_services.GetUserService().GenerateAccessToken(user)
	require.NoError(t, err)

	return user, token
}

// CreateTestAnonymousUser establishes a guest identity and returns it with a token.
func CreateTestAnonymousUser(t *testing.T) (*users_models.User, string) {
	EnsureAnonymousJoinEnabled(t)

	userService := users_services.GetUserService()

	response, err := userService.SignInAnonymous(&users_dto.SignInAnonymousRequest{
		DisplayName: "Test Guest",
	})
	require.NoError(t, err)

	user, err := userService.GetUserByID(response.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)

	return user, response.Token
}

func EnsureRegistrationsEnabled(t *testing.T) {
	setSettingsFlag(t, "is_allow_external_registrations", true)
}

func EnsureAnonymousJoinEnabled(t *testing.T) {
	setSettingsFlag(t, "is_allow_anonymous_join", true)
}

func SetAnonymousJoinAllowed(t *testing.T, allowed bool) {
	setSettingsFlag(t, "is_allow_anonymous_join", allowed)
}

func SetMemberWorkspaceCreationAllowed(t *testing.T, allowed bool) {
	setSettingsFlag(t, "is_member_allowed_to_create_workspaces", allowed)
}

func setSettingsFlag(t *testing.T, column string, value bool) {
	settings, err := users_services.GetSettingsService().GetSettings()
	require.NoError(t, err)

	err = storage.GetDb().
		Model(&users_models.UsersSettings{}).
		Where("id = ?", settings.ID).
		Update(column, value).Error
	require.NoError(t, err)
}
