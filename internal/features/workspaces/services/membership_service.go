package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	users_dto "fieldlog/internal/features/users/dto"
	users_enums "fieldlog/internal/features/users/enums"
	users_interfaces "fieldlog/internal/features/users/interfaces"
	users_models "fieldlog/internal/features/users/models"
	users_services "fieldlog/internal/features/users/services"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_interfaces "fieldlog/internal/features/workspaces/interfaces"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	workspaces_repositories "fieldlog/internal/features/workspaces/repositories"
	"fieldlog/internal/util/logger"
	"fieldlog/internal/util/rate_limit"

	"github.com/google/uuid"
)

const (
	joinRateLimitRps   = 3
	joinRateLimitBurst = 15
)

type MembershipService struct {
	membershipRepository *workspaces_repositories.MembershipRepository
	workspaceService     *WorkspaceService
	userService          *users_services.UserService
	rateLimiter          *rate_limit.RateLimiter
	joinSecretVerifier   workspaces_interfaces.JoinSecretVerifier
	auditLogService      users_interfaces.AuditLogWriter
}

func (s *MembershipService) SetAuditLogService(auditLogService users_interfaces.AuditLogWriter) {
	s.auditLogService = auditLogService
}

func (s *MembershipService) SetJoinSecretVerifier(
	verifier workspaces_interfaces.JoinSecretVerifier,
) {
	s.joinSecretVerifier = verifier
}

// Join enrolls the caller as an observer after the workspace secret checks
// out. When no authenticated user is attached, a fresh anonymous identity is
// established in the same call and its token is returned. Joining a
// workspace the user is already a member of keeps the existing role.
func (s *MembershipService) Join(
	user *users_models.User, workspaceID string, request *workspaces_dto.JoinWorkspaceRequest,
) (*workspaces_dto.JoinWorkspaceResponse, error) {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace == nil {
		return nil, errors.New("workspace not found")
	}

	limitResult, err := s.rateLimiter.CheckRateLimit(
		workspaceID, joinRateLimitRps, joinRateLimitBurst,
	)
	if err != nil {
		// the cache being down should not lock everyone out
		logger.GetLogger().Error("join rate limit check failed", "error", err)
	} else if !limitResult.Allowed {
		return nil, errors.New("too many join attempts")
	}

	if err := s.joinSecretVerifier.VerifyJoinSecret(workspaceID, request.Secret); err != nil {
		return nil, err
	}

	token := ""
	if user == nil {
		signIn, err := s.userService.SignInAnonymous(&users_dto.SignInAnonymousRequest{
			DisplayName: request.DisplayName,
		})
		if err != nil {
			return nil, err
		}

		user, err = s.userService.GetUserByID(signIn.UserID)
		if err != nil {
			return nil, err
		}

		token = signIn.Token
	}

	role := users_enums.WorkspaceRoleObserver

	inserted, err := s.membershipRepository.CreateMembershipIfAbsent(&workspaces_models.Membership{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		DisplayName: request.DisplayName,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if !inserted {
		membership, err := s.membershipRepository.GetMembership(workspaceID, user.ID)
		if err != nil {
			return nil, err
		}

		if membership != nil {
			role = membership.Role
		}
	} else {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("User joined workspace as %s", role), &user.ID, &workspaceID,
		)
	}

	return &workspaces_dto.JoinWorkspaceResponse{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		Token:       token,
	}, nil
}

// GrantRole changes a member's role. Only workspace admins (including
// overridden ones) may do this, and the last admin seat cannot be vacated.
func (s *MembershipService) GrantRole(
	actor *users_models.User, workspaceID string, targetUserID uuid.UUID,
	role users_enums.WorkspaceRole,
) error {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return err
	}

	if workspace == nil {
		return errors.New("workspace not found")
	}

	actorRole, err := s.workspaceService.ResolveEffectiveRole(workspaceID, actor)
	if err != nil {
		return err
	}

	if actorRole != users_enums.WorkspaceRoleAdmin {
		return errors.New("insufficient permissions to manage members")
	}

	if !role.IsValid() {
		return errors.New("invalid role")
	}

	membership, err := s.membershipRepository.GetMembership(workspaceID, targetUserID)
	if err != nil {
		return err
	}

	if membership == nil {
		return errors.New("membership not found for target user")
	}

	if membership.Role == role {
		return nil
	}

	if membership.Role == users_enums.WorkspaceRoleAdmin &&
		role != users_enums.WorkspaceRoleAdmin {
		demoted, err := s.membershipRepository.DemoteAdminIfNotLast(workspaceID, targetUserID, role)
		if err != nil {
			return err
		}

		if !demoted {
			return errors.New("cannot demote the last admin")
		}
	} else if err := s.membershipRepository.UpdateMembershipRole(
		workspaceID, targetUserID, role,
	); err != nil {
		return err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member %s role changed from %s to %s", targetUserID, membership.Role, role),
		&actor.ID, &workspaceID,
	)

	return nil
}

// GetMembers lists the roster; observers only see themselves through other
// endpoints, so this one is restricted to managers and admins.
func (s *MembershipService) GetMembers(
	actor *users_models.User, workspaceID string,
) ([]workspaces_dto.MemberResponse, error) {
	workspace, err := s.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if workspace == nil {
		return nil, errors.New("workspace not found")
	}

	actorRole, err := s.workspaceService.ResolveEffectiveRole(workspaceID, actor)
	if err != nil {
		return nil, err
	}

	if !actorRole.CanSeeAllRecords() {
		return nil, errors.New("insufficient permissions to view members")
	}

	records, err := s.membershipRepository.GetWorkspaceMemberRecords(workspaceID)
	if err != nil {
		return nil, err
	}

	members := make([]workspaces_dto.MemberResponse, 0, len(records))
	for _, record := range records {
		members = append(members, workspaces_dto.MemberResponse{
			UserID:      record.UserID,
			DisplayName: record.DisplayName,
			Role:        record.Role,
			IsAnonymous: record.IsAnonymous,
			JoinedAt:    record.CreatedAt,
		})
	}

	return members, nil
}
