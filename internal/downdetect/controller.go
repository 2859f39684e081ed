package downdetect

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DowndetectController struct {
	downdetectService *DowndetectService
}

func (c *DowndetectController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/downdetect", c.GetLiveness)
}

// GetLiveness
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /downdetect [get]
func (c *DowndetectController) GetLiveness(ctx *gin.Context) {
	if err := c.downdetectService.CheckLiveness(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
