package users_services

import (
	"errors"
	"fmt"
	"time"

	users_dto "fieldlog/internal/features/users/dto"
	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	users_repositories "fieldlog/internal/features/users/repositories"
	"fieldlog/internal/util/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository      *users_repositories.UserRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
	settingsService     *SettingsService
	auditLogService     users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

func (s *UserService) SignUp(request *users_dto.SignUpRequest) (*users_models.User, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return nil, err
	}

	if !settings.IsAllowExternalRegistrations {
		return nil, errors.New("external registrations are disabled")
	}

	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, err
	}

	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordValue := string(hashedPassword)
	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                request.Email,
		DisplayName:          request.DisplayName,
		HashedPassword:       &hashedPasswordValue,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 users_enums.UserRoleMember,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User signed up: %s", user.Email), &user.ID, nil,
	)

	return user, nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequest) (*users_dto.SignInResponse, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.HasPassword() {
		return nil, errors.New("invalid email or password")
	}

	if !user.IsActiveUser() {
		return nil, errors.New("user is not active")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(*user.HashedPassword), []byte(request.Password),
	); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return signInResponse(user, token), nil
}

// SignInAnonymous establishes a real user record for a guest participant.
// Anonymous identities carry no password and cannot be signed into again.
func (s *UserService) SignInAnonymous(
	request *users_dto.SignInAnonymousRequest,
) (*users_dto.SignInResponse, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return nil, err
	}

	if !settings.IsAllowAnonymousJoin {
		return nil, errors.New("anonymous access is disabled")
	}

	userID := uuid.New()
	user := &users_models.User{
		ID:                   userID,
		Email:                fmt.Sprintf("guest-%s@anonymous.local", userID.String()),
		DisplayName:          request.DisplayName,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 users_enums.UserRoleMember,
		Status:               users_enums.UserStatusActive,
		IsAnonymous:          true,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return signInResponse(user, token), nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserFromToken(tokenString string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token")
	}

	userIDValue, ok := claims["userId"].(string)
	if !ok {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(userIDValue)
	if err != nil {
		return nil, errors.New("invalid token")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.IsActiveUser() {
		return nil, errors.New("invalid token")
	}

	passwordCreationTime, ok := claims["passwordCreationTime"].(float64)
	if !ok || int64(passwordCreationTime) != user.PasswordCreationTime.Unix() {
		return nil, errors.New("invalid token")
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (string, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":               user.ID.String(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
		"exp":                  time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (s *UserService) UpdateDisplayName(user *users_models.User, displayName string) error {
	return s.userRepository.UpdateUserDisplayName(user.ID, displayName)
}

func (s *UserService) ChangeUserPassword(
	user *users_models.User, request *users_dto.ChangePasswordRequest,
) error {
	if !user.HasPassword() {
		return errors.New("anonymous users cannot change password")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(*user.HashedPassword), []byte(request.OldPassword),
	); err != nil {
		return errors.New("old password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(request.NewPassword), bcrypt.DefaultCost,
	)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(user.ID, string(hashedPassword)); err != nil {
		return err
	}

	s.auditLogService.WriteAuditLog("User changed password", &user.ID, nil)

	return nil
}

// ChangeUserPasswordByEmail is the recovery path used by the command line
// password reset flag.
func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}

	if user == nil {
		return errors.New("user not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepository.UpdateUserPassword(user.ID, string(hashedPassword))
}

// CreateInitialAdmin seeds the first administrator account on an empty database.
func (s *UserService) CreateInitialAdmin() error {
	count, err := s.userRepository.CountUsers()
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordValue := string(hashedPassword)
	admin := &users_models.User{
		ID:                   uuid.New(),
		Email:                "admin",
		DisplayName:          "Administrator",
		HashedPassword:       &hashedPasswordValue,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 users_enums.UserRoleAdmin,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(admin); err != nil {
		return err
	}

	logger.GetLogger().Info("created initial admin user", "email", admin.Email)

	return nil
}

func signInResponse(user *users_models.User, token string) *users_dto.SignInResponse {
	return &users_dto.SignInResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsAnonymous: user.IsAnonymous,
	}
}
