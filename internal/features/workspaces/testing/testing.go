package workspaces_testing

import (
	"fmt"
	"testing"

	"fieldlog/internal/features/audit_logs"
	"fieldlog/internal/features/join_secrets"
	users_middleware "fieldlog/internal/features/users/middleware"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	test_utils "fieldlog/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type PublicController interface {
	RegisterPublicRoutes(router *gin.RouterGroup)
}

type ProtectedController interface {
	RegisterProtectedRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds a router with the same middleware chain as the
// server entrypoint. Controllers are passed in to keep this package free of
// controller imports; each one is mounted on the public group, the
// protected group, or both, depending on what it implements.
func CreateTestRouter(controllers ...any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware())

	for _, controller := range controllers {
		if public, ok := controller.(PublicController); ok {
			public.RegisterPublicRoutes(v1)
		}

		if prot, ok := controller.(ProtectedController); ok {
			prot.RegisterProtectedRoutes(protected)
		}
	}

	audit_logs.SetupDependencies()
	join_secrets.SetupDependencies()

	return router
}

// UniqueWorkspaceID returns a fresh ID that passes slug validation.
func UniqueWorkspaceID() string {
	return "ws-" + uuid.New().String()
}

// BootstrapTestWorkspace creates a workspace via the API and asserts the
// caller received the admin seat.
func BootstrapTestWorkspace(
	t *testing.T, router *gin.Engine, token string, workspaceID string,
) *workspaces_dto.BootstrapWorkspaceResponse {
	t.Helper()

	var response workspaces_dto.BootstrapWorkspaceResponse
	test_utils.MakePostRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/bootstrap", workspaceID),
		"Bearer "+token,
		workspaces_dto.BootstrapWorkspaceRequest{Name: "Test Workspace"},
		200,
		&response,
	)

	require.True(t, response.Created)

	return &response
}

// SetTestJoinSecret rotates the workspace secret through the API.
func SetTestJoinSecret(
	t *testing.T, router *gin.Engine, adminToken string, workspaceID string, secret string,
) {
	t.Helper()

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join-secret", workspaceID),
		"Bearer "+adminToken,
		map[string]string{"secret": secret},
		200,
	)
}
