package workspaces_repositories

import (
	"errors"
	"fmt"

	workspaces_models "fieldlog/internal/features/workspaces/models"
	"fieldlog/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkspaceRepository struct{}

// CreateWorkspaceIfAbsent inserts the workspace unless the ID is already
// taken. Returns true only when this call actually created the row, which
// is what decides who becomes the first admin under concurrent bootstraps.
func (r *WorkspaceRepository) CreateWorkspaceIfAbsent(
	workspace *workspaces_models.Workspace,
) (bool, error) {
	result := storage.GetDb().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(workspace)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create workspace: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *WorkspaceRepository) UpdateWorkspaceName(workspaceID string, name string) error {
	err := storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("id = ?", workspaceID).
		Update("name", name).Error
	if err != nil {
		return fmt.Errorf("failed to update workspace name: %w", err)
	}

	return nil
}

func (r *WorkspaceRepository) GetWorkspaceByID(
	workspaceID string,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().Where("id = ?", workspaceID).First(&workspace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &workspace, nil
}
