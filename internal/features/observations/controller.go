package observations

import (
	"net/http"
	"strings"

	users_middleware "fieldlog/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ObservationController struct {
	observationService *ObservationService
}

func (c *ObservationController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:workspaceId/observations", c.CreateObservation)
	router.GET("/workspaces/:workspaceId/observations", c.ListObservations)
	router.GET("/workspaces/:workspaceId/observations/:observationId", c.GetObservation)
	router.PUT("/workspaces/:workspaceId/observations/:observationId", c.UpdateObservation)
}

// CreateObservation
// @Summary Record a new observation
// @Tags observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body ObservationRequest true "Observation"
// @Success 201 {object} Observation
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/observations [post]
func (c *ObservationController) CreateObservation(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request ObservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	observation, err := c.observationService.CreateObservation(
		user, ctx.Param("workspaceId"), &request,
	)
	if err != nil {
		c.writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, observation)
}

// ListObservations
// @Summary List observations visible to the caller
// @Description Managers and admins see every record grouped by observer; observers see only their own in session order. onlyMine=true narrows an elevated view to the caller's own records.
// @Tags observations
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param onlyMine query bool false "Restrict the listing to the caller's own records"
// @Success 200 {object} ListObservationsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/observations [get]
func (c *ObservationController) ListObservations(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	onlyMine := ctx.Query("onlyMine") == "true"

	result, err := c.observationService.ListObservations(
		user, ctx.Param("workspaceId"), onlyMine,
	)
	if err != nil {
		c.writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, ListObservationsResponse{Observations: result})
}

// GetObservation
// @Summary Get a single observation
// @Tags observations
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param observationId path string true "Observation ID"
// @Success 200 {object} Observation
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/observations/{observationId} [get]
func (c *ObservationController) GetObservation(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	observationID, err := uuid.Parse(ctx.Param("observationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid observation ID"})

		return
	}

	observation, err := c.observationService.GetObservation(
		user, ctx.Param("workspaceId"), observationID,
	)
	if err != nil {
		c.writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, observation)
}

// UpdateObservation
// @Summary Edit an observation
// @Description Owners edit their own records; managers and admins edit any. Ownership never changes.
// @Tags observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param observationId path string true "Observation ID"
// @Param request body ObservationRequest true "Observation"
// @Success 200 {object} Observation
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/observations/{observationId} [put]
func (c *ObservationController) UpdateObservation(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	observationID, err := uuid.Parse(ctx.Param("observationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid observation ID"})

		return
	}

	var request ObservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	observation, err := c.observationService.UpdateObservation(
		user, ctx.Param("workspaceId"), observationID, &request,
	)
	if err != nil {
		c.writeError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, observation)
}

func (c *ObservationController) writeError(ctx *gin.Context, err error) {
	switch err.Error() {
	case "workspace not found", "observation not found":
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case "user is not a member of this workspace",
		"insufficient permissions to edit this observation":
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		// date and clock parse failures carry field level detail
		if strings.HasPrefix(err.Error(), "invalid") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process observation"})
	}
}
