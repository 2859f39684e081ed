package join_secrets

import (
	"errors"
	"fmt"
	"time"

	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	workspaces_services "fieldlog/internal/features/workspaces/services"

	"golang.org/x/crypto/bcrypt"
)

type JoinSecretService struct {
	joinSecretRepository *JoinSecretRepository
	workspaceService     *workspaces_services.WorkspaceService
	auditLogService      users_interfaces.AuditLogWriter
}

func (s *JoinSecretService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

// SetJoinSecret hashes and stores a new shared secret for the workspace.
// Admin only. Replacing an existing secret immediately invalidates the old one.
func (s *JoinSecretService) SetJoinSecret(
	user *users_models.User, workspaceID string, secret string,
) error {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return err
	}

	if workspace == nil {
		return errors.New("workspace not found")
	}

	role, err := s.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		return err
	}

	if role != users_enums.WorkspaceRoleAdmin {
		return errors.New("insufficient permissions to manage join secret")
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash join secret: %w", err)
	}

	err = s.joinSecretRepository.UpsertJoinSecret(&JoinSecret{
		WorkspaceID: workspaceID,
		SecretHash:  string(secretHash),
		UpdatedBy:   user.ID,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.auditLogService.WriteAuditLog("Workspace join secret rotated", &user.ID, &workspaceID)

	return nil
}

// GetJoinSecretStatus reports whether a secret is set. Admin only; the
// digest itself is never exposed.
func (s *JoinSecretService) GetJoinSecretStatus(
	user *users_models.User, workspaceID string,
) (*JoinSecretStatusResponse, error) {
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
		return nil, errors.New("insufficient permissions to manage join secret")
	}

	joinSecret, err := s.joinSecretRepository.GetJoinSecret(workspaceID)
	if err != nil {
		return nil, err
	}

	response := &JoinSecretStatusResponse{WorkspaceID: workspaceID}
	if joinSecret != nil {
		response.IsSet = true
		response.UpdatedBy = joinSecret.UpdatedBy
		response.UpdatedAt = joinSecret.UpdatedAt
	}

	return response, nil
}

// VerifyJoinSecret compares a plaintext candidate against the stored digest.
// A workspace without a configured secret cannot be joined.
func (s *JoinSecretService) VerifyJoinSecret(workspaceID string, secret string) error {
	joinSecret, err := s.joinSecretRepository.GetJoinSecret(workspaceID)
	if err != nil {
		return err
	}

	if joinSecret == nil {
		return errors.New("invalid join secret")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(joinSecret.SecretHash), []byte(secret),
	); err != nil {
		return errors.New("invalid join secret")
	}

	return nil
}
