package join_secrets_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fieldlog/internal/features/join_secrets"
	users_testing "fieldlog/internal/features/users/testing"
	workspaces_controllers "fieldlog/internal/features/workspaces/controllers"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_testing "fieldlog/internal/features/workspaces/testing"
	test_utils "fieldlog/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkspace(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()

	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		join_secrets.GetJoinSecretController(),
	)

	_, adminToken := users_testing.CreateTestUser(t)
	users_testing.SetMemberWorkspaceCreationAllowed(t, true)

	workspaceID := workspaces_testing.UniqueWorkspaceID()
	workspaces_testing.BootstrapTestWorkspace(t, router, adminToken, workspaceID)

	return router, workspaceID, adminToken
}

func Test_SetJoinSecret_WhenActorIsAdmin_SecretIsStored(t *testing.T) {
	router, workspaceID, adminToken := setupWorkspace(t)

	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, "orienteering-42")

	var status join_secrets.JoinSecretStatusResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join-secret", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&status,
	)

	assert.True(t, status.IsSet)
}

func Test_GetJoinSecretStatus_WhenNoSecretConfigured_ReportsNotSet(t *testing.T) {
	router, workspaceID, adminToken := setupWorkspace(t)

	var status join_secrets.JoinSecretStatusResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join-secret", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&status,
	)

	assert.False(t, status.IsSet)
}

func Test_GetJoinSecretStatus_ResponseNeverContainsDigest(t *testing.T) {
	router, workspaceID, adminToken := setupWorkspace(t)

	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, "orienteering-42")

	response := test_utils.MakeGetRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join-secret", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
	)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(response.Body, &raw))

	assert.NotContains(t, raw, "secretHash")
	assert.NotContains(t, string(response.Body), "orienteering-42")
}

func Test_SetJoinSecret_WhenActorIsObserver_ReturnsForbidden(t *testing.T) {
	router, workspaceID, adminToken := setupWorkspace(t)
	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, "orienteering-42")

	_, observerToken := users_testing.CreateTestUser(t)
	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join", workspaceID),
		"Bearer "+observerToken,
		workspaces_dto.JoinWorkspaceRequest{DisplayName: "Observer", Secret: "orienteering-42"},
		http.StatusOK,
	)

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join-secret", workspaceID),
		"Bearer "+observerToken,
		join_secrets.SetJoinSecretRequest{Secret: "hijacked-secret"},
		http.StatusForbidden,
	)
}

func Test_SetJoinSecret_WhenRotated_OldSecretStopsWorking(t *testing.T) {
	router, workspaceID, adminToken := setupWorkspace(t)
	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, "first-secret-1")

	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, "second-secret-2")

	_, joinerToken := users_testing.CreateTestUser(t)
	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join", workspaceID),
		"Bearer "+joinerToken,
		workspaces_dto.JoinWorkspaceRequest{DisplayName: "Joiner", Secret: "first-secret-1"},
		http.StatusForbidden,
	)

	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join", workspaceID),
		"Bearer "+joinerToken,
		workspaces_dto.JoinWorkspaceRequest{DisplayName: "Joiner", Secret: "second-secret-2"},
		http.StatusOK,
	)
}
