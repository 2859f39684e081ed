package workspaces_repositories

import (
	"errors"
	"fmt"

	workspaces_models "fieldlog/internal/features/workspaces/models"
	"fieldlog/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoticeRepository struct{}

func (r *NoticeRepository) GetNotice(workspaceID string) (*workspaces_models.Notice, error) {
	var notice workspaces_models.Notice

	err := storage.GetDb().Where("workspace_id = ?", workspaceID).First(&notice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get notice: %w", err)
	}

	return &notice, nil
}

// UpsertNotice replaces the workspace notice, keeping it a singleton row.
func (r *NoticeRepository) UpsertNotice(notice *workspaces_models.Notice) error {
	err := storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_by", "updated_at"}),
		}).
		Create(notice).Error
	if err != nil {
		return fmt.Errorf("failed to upsert notice: %w", err)
	}

	return nil
}
