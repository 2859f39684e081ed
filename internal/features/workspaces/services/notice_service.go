package workspaces_services

import (
	"errors"
	"time"

	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	workspaces_repositories "fieldlog/internal/features/workspaces/repositories"
)

type NoticeService struct {
	noticeRepository *workspaces_repositories.NoticeRepository
	workspaceService *WorkspaceService
	auditLogService  users_interfaces.AuditLogWriter
}

func (s *NoticeService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

// GetNotice returns the pinned announcement; any member can read it.
func (s *NoticeService) GetNotice(
	user *users_models.User, workspaceID string,
) (*workspaces_models.Notice, error) {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace == nil {
		return nil, errors.New("workspace not found")
	}

	role, err := s.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		return nil, err
	}

	if role == users_enums.WorkspaceRoleNone {
		return nil, errors.New("user is not a member of this workspace")
	}

	return s.noticeRepository.GetNotice(workspaceID)
}

// UpdateNotice replaces the announcement text. Admin only.
func (s *NoticeService) UpdateNotice(
	user *users_models.User, workspaceID string, text string,
) (*workspaces_models.Notice, error) {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace == nil {
		return nil, errors.New("workspace not found")
	}

	role, err := s.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		return nil, err
	}

	if role != users_enums.WorkspaceRoleAdmin {
		return nil, errors.New("insufficient permissions to update notice")
	}

	notice := &workspaces_models.Notice{
		WorkspaceID: workspaceID,
		Text:        text,
		UpdatedBy:   user.ID,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.noticeRepository.UpsertNotice(notice); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog("Workspace notice updated", &user.ID, &workspaceID)

	return notice, nil
}
