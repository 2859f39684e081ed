package workspaces_controllers

import (
	"net/http"

	users_middleware "fieldlog/internal/features/users/middleware"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_services "fieldlog/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type NoticeController struct {
	noticeService *workspaces_services.NoticeService
}

func (c *NoticeController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:workspaceId/notice", c.GetNotice)
	router.PUT("/workspaces/:workspaceId/notice", c.UpdateNotice)
}

// GetNotice
// @Summary Get the workspace notice
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.NoticeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/notice [get]
func (c *NoticeController) GetNotice(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	workspaceID := ctx.Param("workspaceId")

	notice, err := c.noticeService.GetNotice(user, workspaceID)
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "user is not a member of this workspace":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notice"})
		}

		return
	}

	response := workspaces_dto.NoticeResponse{WorkspaceID: workspaceID}
	if notice != nil {
		response.Text = notice.Text
		response.UpdatedBy = notice.UpdatedBy
		response.UpdatedAt = notice.UpdatedAt
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateNotice
// @Summary Update the workspace notice
// @Description Workspace admins only
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.UpdateNoticeRequest true "Notice text"
// @Success 200 {object} workspaces_dto.NoticeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/notice [put]
func (c *NoticeController) UpdateNotice(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request workspaces_dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	workspaceID := ctx.Param("workspaceId")

	notice, err := c.noticeService.UpdateNotice(user, workspaceID, request.Text)
	if err != nil {
		switch err.Error() {
		case "workspace not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to update notice":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notice"})
		}

		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.NoticeResponse{
		WorkspaceID: notice.WorkspaceID,
		Text:        notice.Text,
		UpdatedBy:   notice.UpdatedBy,
		UpdatedAt:   notice.UpdatedAt,
	})
}
