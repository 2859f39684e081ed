package audit_logs

import (
	"net/http"

	users_enums "fieldlog/internal/features/users/enums"
	users_middleware "fieldlog/internal/features/users/middleware"
	users_models "fieldlog/internal/features/users/models"
	workspaces_services "fieldlog/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditLogController struct {
	auditLogService  *AuditLogService
	workspaceService *workspaces_services.WorkspaceService
}

func (c *AuditLogController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", c.GetAuditLogs)
	router.GET("/audit-logs/users/:userId", c.GetUserAuditLogs)
	router.GET("/audit-logs/workspaces/:workspaceId", c.GetWorkspaceAuditLogs)
}

// GetAuditLogs
// @Summary Get global audit logs
// @Description Only global admins can read the full audit trail
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Router /audit-logs [get]
func (c *AuditLogController) GetAuditLogs(ctx *gin.Context) {
	user, request, ok := c.bindRequest(ctx)
	if !ok {
		return
	}

	if !user.CanUpdateSettings() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions to read audit logs"})

		return
	}

	auditLogs, total, err := c.auditLogService.GetAuditLogs(request.Limit, request.Offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit logs"})

		return
	}

	ctx.JSON(http.StatusOK, GetAuditLogsResponse{AuditLogs: auditLogs, Total: total})
}

// GetUserAuditLogs
// @Summary Get audit logs for a user
// @Description Users can read their own trail; global admins can read anyone's
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Router /audit-logs/users/{userId} [get]
func (c *AuditLogController) GetUserAuditLogs(ctx *gin.Context) {
	user, request, ok := c.bindRequest(ctx)
	if !ok {
		return
	}

	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})

		return
	}

	if userID != user.ID && !user.CanUpdateSettings() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions to read audit logs"})

		return
	}

	auditLogs, total, err := c.auditLogService.GetAuditLogsByUser(
		userID, request.Limit, request.Offset,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit logs"})

		return
	}

	ctx.JSON(http.StatusOK, GetAuditLogsResponse{AuditLogs: auditLogs, Total: total})
}

// GetWorkspaceAuditLogs
// @Summary Get audit logs for a workspace
// @Description Readable by the workspace's effective admins
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Router /audit-logs/workspaces/{workspaceId} [get]
func (c *AuditLogController) GetWorkspaceAuditLogs(ctx *gin.Context) {
	user, request, ok := c.bindRequest(ctx)
	if !ok {
		return
	}

	workspaceID := ctx.Param("workspaceId")

	role, err := c.workspaceService.ResolveEffectiveRole(workspaceID, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})

		return
	}

	if role != users_enums.WorkspaceRoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions to read audit logs"})

		return
	}

	auditLogs, total, err := c.auditLogService.GetAuditLogsByWorkspace(
		workspaceID, request.Limit, request.Offset,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit logs"})

		return
	}

	ctx.JSON(http.StatusOK, GetAuditLogsResponse{AuditLogs: auditLogs, Total: total})
}

func (c *AuditLogController) bindRequest(
	ctx *gin.Context,
) (*users_models.User, *GetAuditLogsRequest, bool) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return nil, nil, false
	}

	var request GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})

		return nil, nil, false
	}

	return user, &request, true
}
