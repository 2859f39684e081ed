package observations

import (
	"errors"
	"fmt"
	"time"

	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	workspaces_services "fieldlog/internal/features/workspaces/services"
	time_parser "fieldlog/internal/util/time"

	"github.com/google/uuid"
)

type ObservationService struct {
	observationRepository *ObservationRepository
	workspaceService      *workspaces_services.WorkspaceService
	auditLogService       users_interfaces.AuditLogWriter
}

func (s *ObservationService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

// CreateObservation records a new session. Any workspace member can create;
// the record is owned by its creator forever.
func (s *ObservationService) CreateObservation(
	user *users_models.User, workspaceID string, request *ObservationRequest,
) (*Observation, error) {
	if _, err := s.resolveMemberRole(user, workspaceID); err != nil {
		return nil, err
	}

	observation, err := observationFromRequest(request)
	if err != nil {
		return nil, err
	}

	observation.ID = uuid.New()
	observation.WorkspaceID = workspaceID
	observation.CreatedBy = user.ID
	observation.CreatedAt = time.Now().UTC()
	observation.UpdatedAt = observation.CreatedAt

	if err := s.observationRepository.CreateObservation(observation); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Observation recorded at station %s", observation.StationName),
		&user.ID, &workspaceID,
	)

	return observation, nil
}

// UpdateObservation edits a record in place. The owner may always edit their
// own record; managers and admins may edit any record in the workspace.
// Ownership itself never changes.
func (s *ObservationService) UpdateObservation(
	user *users_models.User, workspaceID string, observationID uuid.UUID,
	request *ObservationRequest,
) (*Observation, error) {
	role, err := s.resolveMemberRole(user, workspaceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.observationRepository.GetObservationByID(observationID)
	if err != nil {
		return nil, err
	}

	if existing == nil || existing.WorkspaceID != workspaceID {
		return nil, errors.New("observation not found")
	}

	if existing.CreatedBy != user.ID && !role.CanSeeAllRecords() {
		return nil, errors.New("insufficient permissions to edit this observation")
	}

	updated, err := observationFromRequest(request)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.WorkspaceID = existing.WorkspaceID
	updated.CreatedBy = existing.CreatedBy
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := s.observationRepository.UpdateObservation(updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// GetObservation returns a single record, subject to the same visibility
// rule as listings.
func (s *ObservationService) GetObservation(
	user *users_models.User, workspaceID string, observationID uuid.UUID,
) (*Observation, error) {
	role, err := s.resolveMemberRole(user, workspaceID)
	if err != nil {
		return nil, err
	}

	observation, err := s.observationRepository.GetObservationByID(observationID)
	if err != nil {
		return nil, err
	}

	if observation == nil || observation.WorkspaceID != workspaceID {
		return nil, errors.New("observation not found")
	}

	if observation.CreatedBy != user.ID && !role.CanSeeAllRecords() {
		return nil, errors.New("observation not found")
	}

	return observation, nil
}

// ListObservations returns the records visible to the caller. Elevated
// roles can narrow the listing to their own records with onlyMine.
func (s *ObservationService) ListObservations(
	user *users_models.User, workspaceID string, onlyMine bool,
) ([]Observation, error) {
	role, err := s.resolveMemberRole(user, workspaceID)
	if err != nil {
		return nil, err
	}

	return s.observationRepository.ListObservations(
		BuildListQuery(role, user.ID, workspaceID, onlyMine),
	)
}

func (s *ObservationService) resolveMemberRole(
	user *users_models.User, workspaceID string,
) (users_enums.WorkspaceRole, error) {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return users_enums.WorkspaceRoleNone, err
	}

	if workspace == nil {
		return users_enums.WorkspaceRoleNone, errors.New("workspace not found")
	}

	role, err := s.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		return users_enums.WorkspaceRoleNone, err
	}

	if role == users_enums.WorkspaceRoleNone {
		return users_enums.WorkspaceRoleNone, errors.New("user is not a member of this workspace")
	}

	return role, nil
}

func observationFromRequest(request *ObservationRequest) (*Observation, error) {
	obsDate, err := time_parser.ParseDate(request.ObsDate)
	if err != nil {
		return nil, fmt.Errorf("invalid observation date: %w", err)
	}

	startTime, err := time_parser.ParseDateClock(request.ObsDate, request.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	endTime, err := time_parser.ParseDateClock(request.ObsDate, request.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	return &Observation{
		Observer:     request.Observer,
		StationName:  request.StationName,
		ObsDate:      obsDate,
		StartTime:    startTime,
		EndTime:      endTime,
		ReceiverNo:   request.ReceiverNo,
		ReceiverName: request.ReceiverName,
		HeightMode:   request.HeightMode,
		Memo:         request.Memo,
	}, nil
}
