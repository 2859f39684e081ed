package join_secrets

import (
	"errors"
	"fmt"

	"fieldlog/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JoinSecretRepository struct{}

func (r *JoinSecretRepository) GetJoinSecret(workspaceID string) (*JoinSecret, error) {
	var joinSecret JoinSecret

	err := storage.GetDb().Where("workspace_id = ?", workspaceID).First(&joinSecret).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get join secret: %w", err)
	}

	return &joinSecret, nil
}

func (r *JoinSecretRepository) UpsertJoinSecret(joinSecret *JoinSecret) error {
	err := storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"secret_hash", "updated_by", "updated_at"}),
		}).
		Create(joinSecret).Error
	if err != nil {
		return fmt.Errorf("failed to upsert join secret: %w", err)
	}

	return nil
}
