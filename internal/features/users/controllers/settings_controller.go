package users_controllers

import (
	"net/http"

	users_dto "fieldlog/internal/features/users/dto"
	users_middleware "fieldlog/internal/features/users/middleware"
	users_services "fieldlog/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *users_services.SettingsService
}

func (c *SettingsController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/settings", c.GetSettings)
	router.PUT("/settings", c.UpdateSettings)
}

// GetSettings
// @Summary Get instance settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_models.UsersSettings
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings
// @Summary Update instance settings
// @Description Only global admins can change registration and workspace policies
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} users_models.UsersSettings
// @Failure 403 {object} map[string]string
// @Router /settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request users_dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	settings, err := c.settingsService.UpdateSettings(user, &request)
	if err != nil {
		if err.Error() == "insufficient permissions to update settings" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})

		return
	}

	ctx.JSON(http.StatusOK, settings)
}
