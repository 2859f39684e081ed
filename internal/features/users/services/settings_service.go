package users_services

import (
	"errors"
	"fmt"

	users_dto "fieldlog/internal/features/users/dto"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	users_repositories "fieldlog/internal/features/users/repositories"
)

type SettingsService struct {
	settingsRepository *users_repositories.UsersSettingsRepository
	auditLogService    users_interfaces.AuditLogWriter
}

func (s *SettingsService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

func (s *SettingsService) GetSettings() (*users_models.UsersSettings, error) {
	return s.settingsRepository.GetSettings()
}

func (s *SettingsService) UpdateSettings(
	user *users_models.User, request *users_dto.UpdateSettingsRequest,
) (*users_models.UsersSettings, error) {
	if !user.CanUpdateSettings() {
		return nil, errors.New("insufficient permissions to update settings")
	}

	settings, err := s.settingsRepository.GetSettings()
	if err != nil {
		return nil, err
	}

	if request.IsAllowExternalRegistrations != nil {
		settings.IsAllowExternalRegistrations = *request.IsAllowExternalRegistrations
	}

	if request.IsAllowAnonymousJoin != nil {
		settings.IsAllowAnonymousJoin = *request.IsAllowAnonymousJoin
	}

	if request.IsMemberAllowedToCreateWorkspaces != nil {
		settings.IsMemberAllowedToCreateWorkspaces = *request.IsMemberAllowedToCreateWorkspaces
	}

	if err := s.settingsRepository.UpdateSettings(settings); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Instance settings updated by %s", user.Email), &user.ID, nil,
	)

	return settings, nil
}
