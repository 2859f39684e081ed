package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	users_models "fieldlog/internal/features/users/models"
	"fieldlog/internal/storage"

	"gorm.io/gorm"
)

type SecretKeyRepository struct{}

// GetSecretKey returns the token signing secret, creating one on first use.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		return secretKey.Secret, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to get secret key: %w", err)
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey = users_models.SecretKey{Secret: hex.EncodeToString(randomBytes)}
	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to store secret key: %w", err)
	}

	return secretKey.Secret, nil
}
