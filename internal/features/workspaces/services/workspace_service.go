package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	"fieldlog/internal/config"
	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	users_services "fieldlog/internal/features/users/services"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	workspaces_repositories "fieldlog/internal/features/workspaces/repositories"
	cache_utils "fieldlog/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

type WorkspaceService struct {
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	membershipRepository *workspaces_repositories.MembershipRepository
	settingsService      *users_services.SettingsService
	auditLogService      users_interfaces.AuditLogWriter

	workspaceCache *cache_utils.CacheUtil[workspaces_models.Workspace]
	loadGroup      singleflight.Group
}

func (s *WorkspaceService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

// Bootstrap creates the workspace when the ID is free and enrolls the caller.
// Only the request that actually inserted the row gets the admin seat; every
// other caller, including the same one retrying, ends up with whatever
// membership already exists or a fresh observer one. Bootstrapping an
// existing workspace with a different name renames it. The operation is safe
// to repeat and can never lower an existing role.
func (s *WorkspaceService) Bootstrap(
	user *users_models.User, workspaceID string, name string,
) (users_enums.WorkspaceRole, bool, error) {
	if !workspaces_models.IsValidWorkspaceID(workspaceID) {
		return users_enums.WorkspaceRoleNone, false, errors.New("invalid workspace id")
	}

	existing, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return users_enums.WorkspaceRoleNone, false, err
	}

	created := false
	if existing == nil {
		settings, err := s.settingsService.GetSettings()
		if err != nil {
			return users_enums.WorkspaceRoleNone, false, err
		}

		if !user.CanCreateWorkspaces(settings) {
			return users_enums.WorkspaceRoleNone, false,
				errors.New("insufficient permissions to create workspaces")
		}

		created, err = s.workspaceRepository.CreateWorkspaceIfAbsent(&workspaces_models.Workspace{
			ID:        workspaceID,
			Name:      name,
			CreatedBy: user.ID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return users_enums.WorkspaceRoleNone, false, err
		}
	} else if name != "" && name != existing.Name {
		if err := s.workspaceRepository.UpdateWorkspaceName(workspaceID, name); err != nil {
			return users_enums.WorkspaceRoleNone, false, err
		}

		s.workspaceCache.Invalidate(workspaceID)
	}

	role := users_enums.WorkspaceRoleObserver
	if created {
		role = users_enums.WorkspaceRoleAdmin
	}

	inserted, err := s.membershipRepository.CreateMembershipIfAbsent(&workspaces_models.Membership{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		DisplayName: user.DisplayName,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return users_enums.WorkspaceRoleNone, false, err
	}

	if !inserted {
		membership, err := s.membershipRepository.GetMembership(workspaceID, user.ID)
		if err != nil {
			return users_enums.WorkspaceRoleNone, false, err
		}

		if membership != nil {
			role = membership.Role
		}
	}

	if created {
		s.workspaceCache.Invalidate(workspaceID)
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Workspace created: %s", workspaceID), &user.ID, &workspaceID,
		)
	}

	return role, created, nil
}

// GetWorkspace reads through the cache; concurrent misses for the same
// workspace collapse into a single database query.
func (s *WorkspaceService) GetWorkspace(
	workspaceID string,
) (*workspaces_models.Workspace, error) {
	if cached := s.workspaceCache.Get(workspaceID); cached != nil {
		return cached, nil
	}

	value, err, _ := s.loadGroup.Do(workspaceID, func() (any, error) {
		workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
		if err != nil {
			return nil, err
		}

		if workspace != nil {
			s.workspaceCache.Set(workspaceID, workspace)
		}

		return workspace, nil
	})
	if err != nil {
		return nil, err
	}

	workspace, _ := value.(*workspaces_models.Workspace)

	return workspace, nil
}

// ResolveRole returns the stored membership role, RoleNone when no
// membership exists. It never consults the override list.
func (s *WorkspaceService) ResolveRole(
	workspaceID string, user *users_models.User,
) (users_enums.WorkspaceRole, error) {
	membership, err := s.membershipRepository.GetMembership(workspaceID, user.ID)
	if err != nil {
		return users_enums.WorkspaceRoleNone, err
	}

	if membership == nil {
		return users_enums.WorkspaceRoleNone, nil
	}

	return membership.Role, nil
}

// ResolveEffectiveRole applies the super admin override on top of the stored
// role: allowlisted users and global admins act as workspace admins
// everywhere, without any membership record being written.
func (s *WorkspaceService) ResolveEffectiveRole(
	workspaceID string, user *users_models.User,
) (users_enums.WorkspaceRole, error) {
	role, err := s.ResolveRole(workspaceID, user)
	if err != nil {
		return users_enums.WorkspaceRoleNone, err
	}

	if user.Role == users_enums.UserRoleAdmin || config.GetEnv().IsSuperAdmin(user.ID) {
		return users_enums.WorkspaceRoleAdmin, nil
	}

	return role, nil
}
