package database

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestProjectUpdateColumnUpdates(t *testing.T) {
	upd := ProjectUpdate{
		Name:       strPtr("New Name"),
		Status:     strPtr("stale"),
		Visibility: boolPtr(false),
	}

	updates := upd.columnUpdates()
	assert.Equal(t, "New Name", updates["name"])
	assert.Equal(t, "stale", updates["status"])
	assert.Equal(t, false, updates["visibility"])

	// Nil fields stay untouched.
	assert.NotContains(t, updates, "slug")
	assert.NotContains(t, updates, "description")
	assert.NotContains(t, updates, "tags")
	assert.Len(t, updates, 3)
}

func TestProjectUpdateEmpty(t *testing.T) {
	assert.Empty(t, ProjectUpdate{}.columnUpdates())
}

func TestAdminProjectUpdateColumnUpdates(t *testing.T) {
	upd := AdminProjectUpdate{
		ProjectUpdate: ProjectUpdate{Name: strPtr("Renamed")},
		IsConfirmed:   boolPtr(true),
		Featured:      boolPtr(false),
	}

	updates := upd.columnUpdates()
	assert.Equal(t, "Renamed", updates["name"])
	assert.Equal(t, true, updates["is_confirmed"])
	assert.Equal(t, false, updates["featured"])
	assert.Len(t, updates, 3)
}

func TestAdminProjectUpdateEmpty(t *testing.T) {
	assert.True(t, AdminProjectUpdate{}.Empty())

	assert.False(t, AdminProjectUpdate{
		ProjectUpdate: ProjectUpdate{Name: strPtr("x")},
	}.Empty())
	assert.False(t, AdminProjectUpdate{Featured: boolPtr(true)}.Empty())
	assert.False(t, AdminProjectUpdate{
		StackComponentIDs: &[]uuid.UUID{uuid.New()},
	}.Empty())
	assert.False(t, AdminProjectUpdate{
		Contributors: &[]models.Contributor{},
	}.Empty())
	assert.False(t, AdminProjectUpdate{
		Metrics: &models.Metrics{},
	}.Empty())
}

// Unknown JSON fields must fall off during decoding so the admin edit can
// only ever touch allow-listed columns.
func TestAdminProjectUpdateDropsUnknownFields(t *testing.T) {
	body := `{
		"name": "Renamed",
		"is_confirmed": true,
		"password_hash": "sneaky",
		"created_at": "2020-01-01T00:00:00Z",
		"id": "11111111-1111-1111-1111-111111111111"
	}`

	var upd AdminProjectUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &upd))

	updates := upd.columnUpdates()
	assert.Equal(t, "Renamed", updates["name"])
	assert.Equal(t, true, updates["is_confirmed"])
	assert.Len(t, updates, 2)
	assert.NotContains(t, updates, "password_hash")
	assert.NotContains(t, updates, "created_at")
	assert.NotContains(t, updates, "id")
}

func TestAdminProjectUpdateDecodesChildCollections(t *testing.T) {
	body := `{
		"getting_started_guides": [
			{"title": "Install"},
			{"title": "Configure"}
		],
		"stack_components": ["11111111-1111-1111-1111-111111111111"]
	}`

	var upd AdminProjectUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &upd))

	require.NotNil(t, upd.Guides)
	require.Len(t, *upd.Guides, 2)
	assert.Equal(t, "Install", (*upd.Guides)[0].Title)

	require.NotNil(t, upd.StackComponentIDs)
	assert.Len(t, *upd.StackComponentIDs, 1)
	assert.False(t, upd.Empty())
}

func TestTagsValue(t *testing.T) {
	tags := tagsValue([]string{"go", "cli"})
	assert.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0])
}
