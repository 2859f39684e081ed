package workspaces_repositories

import (
	"errors"
	"fmt"
	"time"

	users_enums "fieldlog/internal/features/users/enums"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	"fieldlog/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct{}

// CreateMembershipIfAbsent inserts a membership unless the user already has
// one in the workspace. An existing record is never modified, so repeated
// joins and bootstraps can never downgrade a role.
func (r *MembershipRepository) CreateMembershipIfAbsent(
	membership *workspaces_models.Membership,
) (bool, error) {
	result := storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(membership)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create membership: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *MembershipRepository) GetMembership(
	workspaceID string, userID uuid.UUID,
) (*workspaces_models.Membership, error) {
	var membership workspaces_models.Membership

	err := storage.GetDb().
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &membership, nil
}

func (r *MembershipRepository) GetWorkspaceMembers(
	workspaceID string,
) ([]workspaces_models.Membership, error) {
	var memberships []workspaces_models.Membership

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace members: %w", err)
	}

	return memberships, nil
}

// MemberRecord joins membership rows with the owning user account.
type MemberRecord struct {
	UserID      uuid.UUID                 `gorm:"column:user_id"`
	DisplayName string                    `gorm:"column:display_name"`
	Role        users_enums.WorkspaceRole `gorm:"column:role"`
	IsAnonymous bool                      `gorm:"column:is_anonymous"`
	CreatedAt   time.Time                 `gorm:"column:created_at"`
}

func (r *MembershipRepository) GetWorkspaceMemberRecords(
	workspaceID string,
) ([]MemberRecord, error) {
	var records []MemberRecord

	err := storage.GetDb().
		Table("workspace_memberships AS m").
		Select("m.user_id, m.display_name, m.role, m.created_at, u.is_anonymous").
		Joins("JOIN users u ON u.id = m.user_id").
		Where("m.workspace_id = ?", workspaceID).
		Order("m.created_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace member records: %w", err)
	}

	return records, nil
}

func (r *MembershipRepository) UpdateMembershipRole(
	workspaceID string, userID uuid.UUID, role users_enums.WorkspaceRole,
) error {
	err := storage.GetDb().
		Model(&workspaces_models.Membership{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Update("role", role).Error
	if err != nil {
		return fmt.Errorf("failed to update membership role: %w", err)
	}

	return nil
}

// DemoteAdminIfNotLast lowers an admin's role only while at least one other
// admin remains. The admin count is checked inside the UPDATE itself, so two
// concurrent demotions cannot both pass the guard and empty the admin seat.
func (r *MembershipRepository) DemoteAdminIfNotLast(
	workspaceID string, userID uuid.UUID, role users_enums.WorkspaceRole,
) (bool, error) {
	result := storage.GetDb().
		Model(&workspaces_models.Membership{}).
		Where("workspace_id = ? AND user_id = ? AND role = ?",
			workspaceID, userID, users_enums.WorkspaceRoleAdmin).
		Where(
			"(SELECT COUNT(*) FROM workspace_memberships WHERE workspace_id = ? AND role = ?) > 1",
			workspaceID, users_enums.WorkspaceRoleAdmin,
		).
		Update("role", role)
	if result.Error != nil {
		return false, fmt.Errorf("failed to demote admin: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
