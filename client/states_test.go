package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausnet/hass-go/models"
	"github.com/hausnet/hass-go/testutil"
)

func TestGetStates(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	server.SetState("light.bedroom", "on", map[string]interface{}{"brightness": 180.0})
	server.SetState("sensor.temperature", "21.5", nil)

	c := newTestClient(t, server.URL(), testToken)

	states, err := c.GetStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)

	byID := map[string]models.State{}
	for _, s := range states {
		byID[s.EntityID] = s
	}
	assert.Equal(t, "on", byID["light.bedroom"].State)
	assert.Equal(t, 180.0, byID["light.bedroom"].Attributes["brightness"])
	assert.Equal(t, "21.5", byID["sensor.temperature"].State)
}

func TestGetState_RequestsEntityPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"entity_id":"light.bedroom","state":"on"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, testToken)

	state, err := c.GetState(context.Background(), "light.bedroom")
	require.NoError(t, err)
	assert.Equal(t, "/api/states/light.bedroom", gotPath)
	assert.Equal(t, "on", state.State)
}

func TestGetState_NotFound(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	_, err := c.GetState(context.Background(), "light.nonexistent")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestGetStates_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"this is": not json`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, testToken)

	states, err := c.GetStates(context.Background())
	require.Error(t, err)
	assert.Nil(t, states)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/api/states", decodeErr.Path)
}

func TestSetState(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	state, err := c.SetState(context.Background(), "sensor.custom", models.StateUpdate{
		State:      "42",
		Attributes: map[string]interface{}{"friendly_name": "Custom Sensor"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sensor.custom", state.EntityID)
	assert.Equal(t, "42", state.State)
	assert.Equal(t, "Custom Sensor", state.Attributes["friendly_name"])

	// A follow-up GET sees the state that was just written.
	got, err := c.GetState(context.Background(), "sensor.custom")
	require.NoError(t, err)
	assert.Equal(t, "42", got.State)
}
