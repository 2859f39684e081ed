package healthcheck

import (
	"net/http"

	users_middleware "fieldlog/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type HealthCheckController struct {
	healthCheckService *HealthCheckService
}

func (c *HealthCheckController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.GetHealth)
}

// GetHealth
// @Summary Host and storage health
// @Description Only global admins can read resource metrics
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HealthStatus
// @Failure 403 {object} map[string]string
// @Router /system/health [get]
func (c *HealthCheckController) GetHealth(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	if !user.CanUpdateSettings() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions to read health metrics"})

		return
	}

	ctx.JSON(http.StatusOK, c.healthCheckService.GetHealthStatus())
}
