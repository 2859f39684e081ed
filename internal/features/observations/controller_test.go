package observations_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fieldlog/internal/features/join_secrets"
	"fieldlog/internal/features/observations"
	users_testing "fieldlog/internal/features/users/testing"
	workspaces_controllers "fieldlog/internal/features/workspaces/controllers"
	workspaces_dto "fieldlog/internal/features/workspaces/dto"
	workspaces_testing "fieldlog/internal/features/workspaces/testing"
	test_utils "fieldlog/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observationsJoinSecret = "field-secret-2026"

func setupObservationWorkspace(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()

	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		join_secrets.GetJoinSecretController(),
		observations.GetObservationController(),
	)

	_, adminToken := users_testing.CreateTestUser(t)
	users_testing.SetMemberWorkspaceCreationAllowed(t, true)

	workspaceID := workspaces_testing.UniqueWorkspaceID()
	workspaces_testing.BootstrapTestWorkspace(t, router, adminToken, workspaceID)
	workspaces_testing.SetTestJoinSecret(t, router, adminToken, workspaceID, observationsJoinSecret)

	return router, workspaceID, adminToken
}

func joinAsObserver(t *testing.T, router *gin.Engine, workspaceID string) string {
	t.Helper()

	_, token := users_testing.CreateTestUser(t)

	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/join", workspaceID),
		"Bearer "+token,
		workspaces_dto.JoinWorkspaceRequest{DisplayName: "Observer", Secret: observationsJoinSecret},
		http.StatusOK,
	)

	return token
}

func createObservation(
	t *testing.T, router *gin.Engine, workspaceID string, token string, observer string,
) *observations.Observation {
	t.Helper()

	request := observations.ObservationRequest{
		Observer:     observer,
		StationName:  "Station A",
		ObsDate:      "2026-04-12",
		StartTime:    "09:30",
		EndTime:      "11:45",
		ReceiverNo:   "RCV-042",
		ReceiverName: "Trimble R12",
		HeightMode:   "slant",
		Memo:         "clear sky",
	}

	response := test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations", workspaceID),
		"Bearer "+token,
		request,
		http.StatusCreated,
	)

	var observation observations.Observation
	require.NoError(t, json.Unmarshal(response.Body, &observation))

	return &observation
}

func Test_CreateObservation_WhenUserIsMember_RecordIsStoredWithOwnership(t *testing.T) {
	router, workspaceID, _ := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	observation := createObservation(t, router, workspaceID, observerToken, "J. Field")

	assert.Equal(t, "J. Field", observation.Observer)
	assert.Equal(t, workspaceID, observation.WorkspaceID)
	assert.NotEqual(t, uuid.Nil, observation.CreatedBy)
}

func Test_CreateObservation_WhenUserIsNotMember_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _ := setupObservationWorkspace(t)
	_, outsiderToken := users_testing.CreateTestUser(t)

	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations", workspaceID),
		"Bearer "+outsiderToken,
		observations.ObservationRequest{
			Observer: "X", StationName: "S", ObsDate: "2026-04-12",
			StartTime: "09:00", EndTime: "10:00",
		},
		http.StatusForbidden,
	)
}

func Test_CreateObservation_WhenDateIsMalformed_ReturnsBadRequest(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)

	test_utils.MakePostRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations", workspaceID),
		"Bearer "+adminToken,
		observations.ObservationRequest{
			Observer: "X", StationName: "S", ObsDate: "12/04/2026",
			StartTime: "09:00", EndTime: "10:00",
		},
		http.StatusBadRequest,
	)
}

func Test_ListObservations_WhenActorIsObserver_SeesOnlyOwnRecords(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	createObservation(t, router, workspaceID, adminToken, "Admin Surveyor")
	own := createObservation(t, router, workspaceID, observerToken, "Own Record")

	var response observations.ListObservationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations", workspaceID),
		"Bearer "+observerToken,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Observations, 1)
	assert.Equal(t, own.ID, response.Observations[0].ID)
}

func Test_ListObservations_WhenActorIsAdmin_SeesAllRecords(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	createObservation(t, router, workspaceID, adminToken, "Admin Surveyor")
	createObservation(t, router, workspaceID, observerToken, "Observer Surveyor")

	var response observations.ListObservationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Observations, 2)
}

func Test_ListObservations_WhenAdminRequestsOnlyMine_SeesOwnRecordsOnly(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	own := createObservation(t, router, workspaceID, adminToken, "Admin Surveyor")
	createObservation(t, router, workspaceID, observerToken, "Observer Surveyor")

	var response observations.ListObservationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations?onlyMine=true", workspaceID),
		"Bearer "+adminToken,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Observations, 1)
	assert.Equal(t, own.ID, response.Observations[0].ID)
}

func Test_UpdateObservation_WhenActorIsOwner_RecordIsUpdated(t *testing.T) {
	router, workspaceID, _ := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	observation := createObservation(t, router, workspaceID, observerToken, "Before Edit")

	response := test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations/%s", workspaceID, observation.ID),
		"Bearer "+observerToken,
		observations.ObservationRequest{
			Observer: "After Edit", StationName: "Station A", ObsDate: "2026-04-12",
			StartTime: "09:30", EndTime: "11:45",
		},
		http.StatusOK,
	)

	var updated observations.Observation
	require.NoError(t, json.Unmarshal(response.Body, &updated))

	assert.Equal(t, "After Edit", updated.Observer)
	assert.Equal(t, observation.CreatedBy, updated.CreatedBy)
}

func Test_UpdateObservation_WhenActorIsAnotherObserver_ReturnsForbidden(t *testing.T) {
	router, workspaceID, _ := setupObservationWorkspace(t)
	ownerToken := joinAsObserver(t, router, workspaceID)
	strangerToken := joinAsObserver(t, router, workspaceID)

	observation := createObservation(t, router, workspaceID, ownerToken, "Owned")

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations/%s", workspaceID, observation.ID),
		"Bearer "+strangerToken,
		observations.ObservationRequest{
			Observer: "Hijacked", StationName: "Station A", ObsDate: "2026-04-12",
			StartTime: "09:30", EndTime: "11:45",
		},
		http.StatusForbidden,
	)
}

func Test_UpdateObservation_WhenActorIsManager_CanEditOthersRecords(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)
	observerToken := joinAsObserver(t, router, workspaceID)

	observation := createObservation(t, router, workspaceID, observerToken, "Original")

	test_utils.MakePutRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations/%s", workspaceID, observation.ID),
		"Bearer "+adminToken,
		observations.ObservationRequest{
			Observer: "Corrected", StationName: "Station A", ObsDate: "2026-04-12",
			StartTime: "09:30", EndTime: "11:45",
		},
		http.StatusOK,
	)
}

func Test_GetObservation_WhenRecordBelongsToAnotherObserver_ReturnsNotFound(t *testing.T) {
	router, workspaceID, _ := setupObservationWorkspace(t)
	ownerToken := joinAsObserver(t, router, workspaceID)
	strangerToken := joinAsObserver(t, router, workspaceID)

	observation := createObservation(t, router, workspaceID, ownerToken, "Private")

	test_utils.MakeGetRequest(
		t, router,
		fmt.Sprintf("/api/v1/workspaces/%s/observations/%s", workspaceID, observation.ID),
		"Bearer "+strangerToken,
		http.StatusNotFound,
	)
}

func Test_DeleteObservation_RouteDoesNotExist(t *testing.T) {
	router, workspaceID, adminToken := setupObservationWorkspace(t)
	observation := createObservation(t, router, workspaceID, adminToken, "Permanent")

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodDelete,
		URL:            fmt.Sprintf("/api/v1/workspaces/%s/observations/%s", workspaceID, observation.ID),
		AuthToken:      "Bearer " + adminToken,
		ExpectedStatus: http.StatusNotFound,
	})
}
