package observations

import (
	"testing"

	users_enums "fieldlog/internal/features/users/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_BuildListQuery_WhenRoleIsManager_SeesWholeWorkspaceGroupedByObserver(t *testing.T) {
	userID := uuid.New()

	query := BuildListQuery(users_enums.WorkspaceRoleManager, userID, "survey-2026", false)

	assert.Equal(t, "survey-2026", query.WorkspaceID)
	assert.False(t, query.OwnerOnly)
	assert.Equal(t, "observer ASC, start_time ASC", query.OrderBy)
}

func Test_BuildListQuery_WhenRoleIsAdmin_SeesWholeWorkspace(t *testing.T) {
	query := BuildListQuery(users_enums.WorkspaceRoleAdmin, uuid.New(), "survey-2026", false)

	assert.False(t, query.OwnerOnly)
	assert.Equal(t, "observer ASC, start_time ASC", query.OrderBy)
}

func Test_BuildListQuery_WhenManagerAsksForOwnRecordsOnly_ScopeNarrowsToOwner(t *testing.T) {
	userID := uuid.New()

	query := BuildListQuery(users_enums.WorkspaceRoleManager, userID, "survey-2026", true)

	assert.True(t, query.OwnerOnly)
	assert.Equal(t, userID, query.OwnerID)
	assert.Equal(t, "start_time ASC", query.OrderBy)
}

func Test_BuildListQuery_WhenRoleIsObserver_SeesOnlyOwnRecords(t *testing.T) {
	userID := uuid.New()

	query := BuildListQuery(users_enums.WorkspaceRoleObserver, userID, "survey-2026", false)

	assert.True(t, query.OwnerOnly)
	assert.Equal(t, userID, query.OwnerID)
	assert.Equal(t, "start_time ASC", query.OrderBy)
}

func Test_BuildListQuery_WhenRoleIsNone_SeesOnlyOwnRecords(t *testing.T) {
	userID := uuid.New()

	query := BuildListQuery(users_enums.WorkspaceRoleNone, userID, "survey-2026", false)

	assert.True(t, query.OwnerOnly)
	assert.Equal(t, userID, query.OwnerID)
}

func Test_BuildListQuery_WhenCalledTwiceWithSameInputs_ResultsAreIdentical(t *testing.T) {
	userID := uuid.New()

	first := BuildListQuery(users_enums.WorkspaceRoleObserver, userID, "survey-2026", false)
	second := BuildListQuery(users_enums.WorkspaceRoleObserver, userID, "survey-2026", false)

	assert.Equal(t, first, second)
}
