package users_repositories

import (
	"errors"
	"fmt"

	users_models "fieldlog/internal/features/users/models"
	"fieldlog/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	if err := storage.GetDb().Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	err := storage.GetDb().
		Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password":        hashedPassword,
			"password_creation_time": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateUserDisplayName(userID uuid.UUID, displayName string) error {
	err := storage.GetDb().
		Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("display_name", displayName).Error
	if err != nil {
		return fmt.Errorf("failed to update user display name: %w", err)
	}

	return nil
}

func (r *UserRepository) CountUsers() (int64, error) {
	var count int64

	if err := storage.GetDb().Model(&users_models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
