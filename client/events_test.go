package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausnet/hass-go/testutil"
)

func TestGetEvents(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	events, err := c.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "state_changed", events[0].Event)
	assert.Equal(t, 2, events[0].ListenerCount)
}

func TestFireEvent(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	msg, err := c.FireEvent(context.Background(), "tag_scanned", map[string]interface{}{
		"tag_id": "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Event tag_scanned fired.", msg.Message)
}

func TestFireEvent_NilData(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	msg, err := c.FireEvent(context.Background(), "custom_event", nil)
	require.NoError(t, err)
	assert.Equal(t, "Event custom_event fired.", msg.Message)
}
