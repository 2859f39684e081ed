package users_controllers

import (
	"net/http"

	users_dto "fieldlog/internal/features/users/dto"
	users_middleware "fieldlog/internal/features/users/middleware"
	users_services "fieldlog/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// shared across all clients, keeps credential stuffing slow
var signInLimiter = rate.NewLimiter(rate.Limit(5), 10)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup", c.SignUp)
	router.POST("/users/signin", c.SignIn)
	router.POST("/users/signin/anonymous", c.SignInAnonymous)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetProfile)
	router.PUT("/users/me/display-name", c.UpdateDisplayName)
	router.PUT("/users/me/password", c.ChangePassword)
}

// SignUp
// @Summary Register a new user
// @Description Create an account with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignUpRequest true "Sign up request"
// @Success 201 {object} users_dto.SignInResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/signup [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	var request users_dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	user, err := c.userService.SignUp(&request)
	if err != nil {
		if err.Error() == "external registrations are disabled" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	token, err := c.userService.GenerateAccessToken(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})

		return
	}

	ctx.JSON(http.StatusCreated, users_dto.SignInResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsAnonymous: user.IsAnonymous,
	})
}

// SignIn
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInRequest true "Sign in request"
// @Success 200 {object} users_dto.SignInResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /users/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	if !signInLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many sign in attempts"})

		return
	}

	var request users_dto.SignInRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SignInAnonymous
// @Summary Sign in as a guest
// @Description Establish an anonymous identity with only a display name
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInAnonymousRequest true "Anonymous sign in request"
// @Success 200 {object} users_dto.SignInResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/signin/anonymous [post]
func (c *UserController) SignInAnonymous(ctx *gin.Context) {
	var request users_dto.SignInAnonymousRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	response, err := c.userService.SignInAnonymous(&request)
	if err != nil {
		if err.Error() == "anonymous access is disabled" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProfile
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileResponse
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	ctx.JSON(http.StatusOK, users_dto.ProfileFromUser(user))
}

// UpdateDisplayName
// @Summary Update display name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateDisplayNameRequest true "Display name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/me/display-name [put]
func (c *UserController) UpdateDisplayName(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request users_dto.UpdateDisplayNameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	if err := c.userService.UpdateDisplayName(user, request.DisplayName); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update display name"})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Display name updated"})
}

// ChangePassword
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.ChangePasswordRequest true "Change password request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/me/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

		return
	}

	var request users_dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})

		return
	}

	if err := c.userService.ChangeUserPassword(user, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
