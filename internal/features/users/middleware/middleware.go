package users_middleware

import (
	"net/http"
	"strings"

	users_models "fieldlog/internal/features/users/models"
	users_services "fieldlog/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := userFromAuthHeader(ctx)
		if user == nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			ctx.Abort()

			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present but
// lets unauthenticated requests through. Join requests use it so guests can
// establish an identity in the same call.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user := userFromAuthHeader(ctx); user != nil {
			ctx.Set(userContextKey, user)
		}

		ctx.Next()
	}
}

func GetUserFromContext(ctx *gin.Context) *users_models.User {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*users_models.User)
	if !ok {
		return nil
	}

	return user
}

func userFromAuthHeader(ctx *gin.Context) *users_models.User {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil
	}

	user, err := users_services.GetUserService().GetUserFromToken(tokenString)
	if err != nil {
		return nil
	}

	return user
}
