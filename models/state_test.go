package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payload shape as returned by a real Home Assistant instance.
func TestState_Decode(t *testing.T) {
	body := `{
		"entity_id": "light.bedroom",
		"state": "on",
		"attributes": {
			"friendly_name": "Bedroom Light",
			"brightness": 180,
			"rgb_color": [255, 200, 120]
		},
		"last_changed": "2024-06-01T10:00:00.146423+00:00",
		"last_updated": "2024-06-01T10:00:00.146423+00:00",
		"context": {
			"id": "01HZABCDEF",
			"parent_id": null,
			"user_id": "deadbeef"
		}
	}`

	var state State
	require.NoError(t, json.Unmarshal([]byte(body), &state))

	assert.Equal(t, "light.bedroom", state.EntityID)
	assert.Equal(t, "on", state.State)
	assert.Equal(t, "Bedroom Light", state.Attributes["friendly_name"])
	assert.Equal(t, 2024, state.LastChanged.Year())
	require.NotNil(t, state.Context)
	assert.Equal(t, "01HZABCDEF", state.Context.ID)
	assert.Equal(t, "deadbeef", state.Context.UserID)
	assert.True(t, state.LastReported.IsZero())
}

// minimal_response history entries carry only state and last_changed.
func TestHistoryEntry_DecodeMinimal(t *testing.T) {
	body := `{"state": "22.0", "last_changed": "2024-06-01T10:10:00+00:00"}`

	var entry HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entry))

	assert.Empty(t, entry.EntityID)
	assert.Equal(t, "22.0", entry.State)
	assert.Nil(t, entry.Attributes)
}
