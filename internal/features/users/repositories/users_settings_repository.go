package users_repositories

import (
	"errors"
	"fmt"

	users_models "fieldlog/internal/features/users/models"
	"fieldlog/internal/storage"

	"gorm.io/gorm"
)

type UsersSettingsRepository struct{}

// GetSettings returns the singleton settings row, creating defaults on first use.
func (r *UsersSettingsRepository) GetSettings() (*users_models.UsersSettings, error) {
	var settings users_models.UsersSettings

	err := storage.GetDb().First(&settings).Error
	if err == nil {
		return &settings, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get users settings: %w", err)
	}

	settings = users_models.UsersSettings{
		IsAllowExternalRegistrations:      true,
		IsAllowAnonymousJoin:              true,
		IsMemberAllowedToCreateWorkspaces: true,
	}
	if err := storage.GetDb().Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create default users settings: %w", err)
	}

	return &settings, nil
}

func (r *UsersSettingsRepository) UpdateSettings(settings *users_models.UsersSettings) error {
	if err := storage.GetDb().Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update users settings: %w", err)
	}

	return nil
}
