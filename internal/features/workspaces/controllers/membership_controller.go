package workspaces_controllers

import (
	"net/http"

	users_middleware "fieldlog/internal/features/users/middleware"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_services "fieldlog/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *workspaces_services.MembershipService
}

func (c *MembershipController) RegisterPublicRoutes(router *gin.RouterGroup) {
	// optional auth: guests establish an identity in the same call
	router.POST(
		"/workspaces/:workspaceId/join",
		users_middleware.OptionalAuthMiddleware(),
		c.Join,
	)
}

func (c *MembershipController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:workspaceId/members", c.GetMembers)
	router.PUT("/workspaces/:workspaceId/members/:userId/role", c.ChangeMemberRole)
}

// Join
// @Summary Join a workspace with its shared secret
// @Description Enrolls the caller as an observer. Guests get an anonymous identity and a token in the response.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.JoinWorkspaceRequest true "Join request"
// @Success 200 {object} workspaces_dto.JoinWorkspaceResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /workspaces/{workspaceId}/join [post]
func (c *MembershipController) Join(ctx *gin.Context) {
	var request workspaces_dto.JoinWorkspaceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	user := users_middleware.GetUserFromContext(ctx)
	workspaceID := ctx.Param("workspaceId")

	response, err := c.membershipService.Join(user, workspaceID, &request)
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invalid join secret", "anonymous access is disabled":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "too many join attempts":
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join workspace"})
		}

		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMembers
// @Summary List workspace members
// @Description Managers and admins only
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.GetMembersResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	members, err := c.membershipService.GetMembers(user, ctx.Param("workspaceId"))
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to view members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get members"})
		}

		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.GetMembersResponse{Members: members})
}

// ChangeMemberRole
// @Summary Change a member's role
// @Description Workspace admins only. A missing membership for the target is reported as not found, distinct from permission errors.
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param userId path string true "Target user ID"
// @Param request body workspaces_dto.ChangeMemberRoleRequest true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/members/{userId}/role [put]
func (c *MembershipController) ChangeMemberRole(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})

		return
	}

	var request workspaces_dto.ChangeMemberRoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	err = c.membershipService.GrantRole(user, ctx.Param("workspaceId"), targetUserID, request.Role)
	if err != nil {
		switch err.Error() {
		case "workspace not found", "membership not found for target user":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to manage members", "cannot demote the last admin":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "invalid role":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change member role"})
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
