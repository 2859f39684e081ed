package workspaces_controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fieldlog/internal/features/join_secrets"
	users_enums "fieldlog/internal/features/users/enums"
	users_models "fieldlog/internal/features/users/models"
	users_testing "fieldlog/internal/features/users/testing"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_testing "fieldlog/internal/features/workspaces/testing"
	test_utils "fieldlog/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJoinSecret = "field-secret-2026"

func setupJoinableWorkspace(
	t *testing.T,
) (*gin.Engine, string, *users_models.User, string) {
	t.Helper()

	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
		GetNoticeController(),
		join_secrets.GetJoinSecretController(),
	)

	admin, adminToken := users_testing.CreateTestUser(t)
	users_testing.SetMemberWorkspaceCreationAllowed(t, true)

	workspaceID := workspaces_testing.UniqueWorkspaceID()
	workspaces_testing.BootstrapTestWorkspace(t, router, adminToken, workspaceID)
	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, testJoinSecret)

	return router, workspaceID, admin, adminToken
}

func joinWorkspace(
	t *testing.T, router *gin.Engine, workspaceID string, token string, secret string,
	expectedStatus int,
) *workspaces_dto.JoinWorkspaceResponse {
	t.Helper()

	authToken := ""
	if token != "" {
		authToken = "Bearer " + token
	}

	response := test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join", workspaceID),
		authToken,
		workspaces_dto.JoinWorkspaceRequest{DisplayName: "Field Member", Secret: secret},
		expectedStatus,
	)

	if expectedStatus != http.StatusOK {
		return nil
	}

	var joinResponse workspaces_dto.JoinWorkspaceResponse
	require.NoError(t, json.Unmarshal(response.Body, &joinResponse))

	return &joinResponse
}

// Join tests

func Test_Join_WhenSecretIsCorrect_UserBecomesObserver(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)
	joiner, joinerToken := users_testing.CreateTestUser(t)

	response := joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	assert.Equal(t, users_enums.WorkspaceRoleObserver, response.Role)
	assert.Equal(t, joiner.ID, response.UserID)
	assert.Empty(t, response.Token)
}

func Test_Join_WhenSecretIsWrong_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)
	_, joinerToken := users_testing.CreateTestUser(t)

	joinWorkspace(t, router, workspaceID, joinerToken, "not-the-secret", http.StatusForbidden)
}

func Test_Join_WhenUnauthenticated_CreatesAnonymousIdentity(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)
	users_testing.SetAnonymousJoinAllowed(t, true)

	response := joinWorkspace(t, router, workspaceID, "", testJoinSecret, http.StatusOK)

	assert.Equal(t, users_enums.WorkspaceRoleObserver, response.Role)
	assert.NotEmpty(t, response.Token)
	assert.NotEqual(t, uuid.Nil, response.UserID)
}

func Test_Join_WhenAnonymousJoinDisabled_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)

	users_testing.SetAnonymousJoinAllowed(t, false)
	defer users_testing.SetAnonymousJoinAllowed(t, true)

	joinWorkspace(t, router, workspaceID, "", testJoinSecret, http.StatusForbidden)
}

func Test_Join_WhenWorkspaceDoesNotExist_ReturnsNotFound(t *testing.T) {
	router, _, _, _ := setupJoinableWorkspace(t)
	_, joinerToken := users_testing.CreateTestUser(t)

	joinWorkspace(
		t, router, workspaces_testing.UniqueWorkspaceID(), joinerToken,
		testJoinSecret, http.StatusNotFound,
	)
}

func Test_Join_WhenAlreadyMember_RoleIsNotDowngraded(t *testing.T) {
	router, workspaceID, _, adminToken := setupJoinableWorkspace(t)
	joiner, joinerToken := users_testing.CreateTestUser(t)

	joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	// promote, then join again
	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, joiner.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleManager},
		http.StatusOK,
	)

	response := joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)
	assert.Equal(t, users_enums.WorkspaceRoleManager, response.Role)
}

// ChangeMemberRole tests

func Test_ChangeMemberRole_WhenActorIsAdmin_RoleIsUpdated(t *testing.T) {
	router, workspaceID, _, adminToken := setupJoinableWorkspace(t)
	joiner, joinerToken := users_testing.CreateTestUser(t)
	joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, joiner.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleManager},
		http.StatusOK,
	)

	var roleResponse workspaces_dto.WorkspaceRoleResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/role", workspaceID),
		"Bearer "+joinerToken,
		http.StatusOK,
		&roleResponse,
	)

	assert.Equal(t, users_enums.WorkspaceRoleManager, roleResponse.Role)
}

func Test_ChangeMemberRole_WhenTargetHasNoMembership_ReturnsNotFound(t *testing.T) {
	router, workspaceID, _, adminToken := setupJoinableWorkspace(t)
	outsider, _ := users_testing.CreateTestUser(t)

	response := test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, outsider.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleManager},
		http.StatusNotFound,
	)

	assert.Contains(t, string(response.Body), "membership not found for target user")
}

func Test_ChangeMemberRole_WhenActorIsObserver_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)
	_, observerToken := users_testing.CreateTestUser(t)
	target, targetToken := users_testing.CreateTestUser(t)

	joinWorkspace(t, router, workspaceID, observerToken, testJoinSecret, http.StatusOK)
	joinWorkspace(t, router, workspaceID, targetToken, testJoinSecret, http.StatusOK)

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, target.ID),
		"Bearer "+observerToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleManager},
		http.StatusForbidden,
	)
}

func Test_ChangeMemberRole_WhenDemotingLastAdmin_ReturnsForbidden(t *testing.T) {
	router, workspaceID, admin, adminToken := setupJoinableWorkspace(t)

	response := test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, admin.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleObserver},
		http.StatusForbidden,
	)

	assert.Contains(t, string(response.Body), "cannot demote the last admin")
}

func Test_ChangeMemberRole_WhenAnotherAdminRemains_DemotionSucceeds(t *testing.T) {
	router, workspaceID, admin, adminToken := setupJoinableWorkspace(t)
	joiner, joinerToken := users_testing.CreateTestUser(t)
	joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, joiner.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleAdmin},
		http.StatusOK,
	)

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspaceID, admin.ID),
		"Bearer "+adminToken,
		workspaces_dto.ChangeMemberRoleRequest{Role: users_enums.WorkspaceRoleObserver},
		http.StatusOK,
	)

	var roleResponse workspaces_dto.WorkspaceRoleResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/role", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&roleResponse,
	)

	assert.Equal(t, users_enums.WorkspaceRoleObserver, roleResponse.Role)
}

// GetMembers tests

func Test_GetMembers_WhenActorIsAdmin_ReturnsRoster(t *testing.T) {
	router, workspaceID, _, adminToken := setupJoinableWorkspace(t)
	_, joinerToken := users_testing.CreateTestUser(t)
	joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	var response workspaces_dto.GetMembersResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Members, 2)
}

func Test_GetMembers_WhenActorIsObserver_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _, _ := setupJoinableWorkspace(t)
	_, joinerToken := users_testing.CreateTestUser(t)
	joinWorkspace(t, router, workspaceID, joinerToken, testJoinSecret, http.StatusOK)

	test_utils.MakeGetRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspaceID),
		"Bearer "+joinerToken,
		http.StatusForbidden,
	)
}
