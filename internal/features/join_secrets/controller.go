package join_secrets

import (
	"net/http"

	users_middleware "fieldlog/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type JoinSecretController struct {
	joinSecretService *JoinSecretService
}

func (c *JoinSecretController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.PUT("/workspaces/:workspaceId/join-secret", c.SetJoinSecret)
	router.GET("/workspaces/:workspaceId/join-secret", c.GetJoinSecretStatus)
}

// SetJoinSecret
// @Summary Set or rotate the workspace join secret
// @Description Workspace admins only. The secret is stored as a bcrypt digest.
// @Tags join-secrets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body SetJoinSecretRequest true "New secret"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/join-secret [put]
func (c *JoinSecretController) SetJoinSecret(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request SetJoinSecretRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	err := c.joinSecretService.SetJoinSecret(user, ctx.Param("workspaceId"), request.Secret)
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to manage join secret":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set join secret"})
		}

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Join secret updated"})
}

// GetJoinSecretStatus
// @Summary Get join secret status
// @Description Reports whether a secret is configured; the digest is never returned.
// @Tags join-secrets
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} JoinSecretStatusResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/join-secret [get]
func (c *JoinSecretController) GetJoinSecretStatus(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	status, err := c.joinSecretService.GetJoinSecretStatus(user, ctx.Param("workspaceId"))
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to manage join secret":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get join secret status"})
		}

		return
	}

	ctx.JSON(http.StatusOK, status)
}
