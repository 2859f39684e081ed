package audit_logs_test

import (
	"fmt"
	"net/http"
	"testing"

	"fieldlog/internal/features/audit_logs"
	users_testing "fieldlog/internal/features/users/testing"
	workspaces_controllers "fieldlog/internal/features/workspaces/controllers"
	workspaces_testing "fieldlog/internal/features/workspaces/testing"
	test_utils "fieldlog/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetAuditLogs_WhenActorIsGlobalAdmin_ReturnsEntries(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(audit_logs.GetAuditLogController())
	_, adminToken := users_testing.CreateTestAdminUser(t)

	// signing up a user produces at least one audit entry
	users_testing.CreateTestUser(t)

	var response audit_logs.GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		"/api/v1/audit-logs?limit=10",
		"Bearer "+adminToken,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.AuditLogs)
	assert.Greater(t, response.Total, int64(0))
}

func Test_GetAuditLogs_WhenActorIsMember_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(audit_logs.GetAuditLogController())
	_, memberToken := users_testing.CreateTestUser(t)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/audit-logs", "Bearer "+memberToken, http.StatusForbidden,
	)
}

func Test_GetUserAuditLogs_WhenActorReadsOwnTrail_ReturnsEntries(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(audit_logs.GetAuditLogController())
	user, token := users_testing.CreateTestUser(t)

	var response audit_logs.GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/audit-logs/users/%s", user.ID),
		"Bearer "+token,
		http.StatusOK,
		&response,
	)

	// signing up wrote the first entry of the user's own trail
	assert.NotEmpty(t, response.AuditLogs)
}

func Test_GetUserAuditLogs_WhenActorReadsAnotherUsersTrail_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(audit_logs.GetAuditLogController())
	other, _ := users_testing.CreateTestUser(t)
	_, token := users_testing.CreateTestUser(t)

	test_utils.MakeGetRequest(
		t, router,
		fmt.Sprintf("/api/v1/audit-logs/users/%s", other.ID),
		"Bearer "+token,
		http.StatusForbidden,
	)
}

func Test_GetWorkspaceAuditLogs_WhenActorIsWorkspaceAdmin_ReturnsEntries(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		audit_logs.GetAuditLogController(),
		workspaces_controllers.GetWorkspaceController(),
	)
	_, token := users_testing.CreateTestUser(t)
	users_testing.SetMemberWorkspaceCreationAllowed(t, true)

	workspaceID := workspaces_testing.UniqueWorkspaceID()
	workspaces_testing.BootstrapTestWorkspace(t, router, token, workspaceID)

	var response audit_logs.GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/audit-logs/workspaces/%s", workspaceID),
		"Bearer "+token,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.AuditLogs)
}

func Test_GetWorkspaceAuditLogs_WhenActorIsNotWorkspaceAdmin_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		audit_logs.GetAuditLogController(),
		workspaces_controllers.GetWorkspaceController(),
	)
	_, creatorToken := users_testing.CreateTestUser(t)
	_, outsiderToken := users_testing.CreateTestUser(t)
	users_testing.SetMemberWorkspaceCreationAllowed(t, true)

	workspaceID := workspaces_testing.UniqueWorkspaceID()
	workspaces_testing.BootstrapTestWorkspace(t, router, creatorToken, workspaceID)

	test_utils.MakeGetRequest(
		t, router,
		fmt.Sprintf("/api/v1/audit-logs/workspaces/%s", workspaceID),
		"Bearer "+outsiderToken,
		http.StatusForbidden,
	)
}

func Test_GetWorkspaceAuditLogs_WhenActorIsGlobalAdmin_ReturnsScopedEntries(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(audit_logs.GetAuditLogController())
	_, adminToken := users_testing.CreateTestAdminUser(t)

	var response audit_logs.GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		"/api/v1/audit-logs/workspaces/no-such-workspace",
		"Bearer "+adminToken,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.AuditLogs)
}
