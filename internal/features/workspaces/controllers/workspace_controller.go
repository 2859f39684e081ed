package workspaces_controllers

import (
	"net/http"

	users_enums "fieldlog/internal/features/users/enums"
	users_middleware "fieldlog/internal/features/users/middleware"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_services "fieldlog/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:workspaceId/bootstrap", c.Bootstrap)
	router.GET("/workspaces/:workspaceId", c.GetWorkspace)
	router.GET("/workspaces/:workspaceId/role", c.GetRole)
}

// Bootstrap
// @Summary Create a workspace or enroll into an existing one
// @Description Creates the workspace when the ID is free; the creating caller becomes admin, later callers become observers. Safe to repeat.
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.BootstrapWorkspaceRequest true "Bootstrap request"
// @Success 200 {object} workspaces_dto.BootstrapWorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/bootstrap [post]
func (c *WorkspaceController) Bootstrap(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request workspaces_dto.BootstrapWorkspaceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	workspaceID := ctx.Param("workspaceId")

	role, created, err := c.workspaceService.Bootstrap(user, workspaceID, request.Name)
	if err != nil {
		switch err.Error() {
		case "invalid workspace id":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case "insufficient permissions to create workspaces":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bootstrap workspace"})
		}

		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.BootstrapWorkspaceResponse{
		ID:      workspaceID,
		Name:    request.Name,
		Role:    role,
		Created: created,
	})
}

// GetWorkspace
// @Summary Get a workspace
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	workspaceID := ctx.Param("workspaceId")

	workspace, err := c.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workspace"})

		return
	}

	if workspace == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})

		return
	}

	role, err := c.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})

		return
	}

	if role == users_enums.WorkspaceRoleNone {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "user is not a member of this workspace"})

		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// GetRole
// @Summary Get the caller's role in a workspace
// @Description Read-only; reports both the stored role and the effective role after the super admin override.
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.WorkspaceRoleResponse
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/role [get]
func (c *WorkspaceController) GetRole(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	workspaceID := ctx.Param("workspaceId")

	workspace, err := c.workspaceService.GetWorkspace(workspaceID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workspace"})

		return
	}

	if workspace == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})

		return
	}

	role, err := c.workspaceService.ResolveRole(workspaceID, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})

		return
	}

	effectiveRole, err := c.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})

		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.WorkspaceRoleResponse{
		WorkspaceID:   workspaceID,
		Role:          role,
		EffectiveRole: effectiveRole,
	})
}
