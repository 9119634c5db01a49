package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausnet/hass-go/testutil"
)

func TestRenderTemplate(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	text, err := c.RenderTemplate(context.Background(), "It is {{ now() }}")
	require.NoError(t, err)
	assert.Equal(t, "rendered: It is {{ now() }}", text)
}

func TestHandleIntent(t *testing.T) {
	server := testutil.NewMockHAServer(testToken)
	defer server.Close()

	c := newTestClient(t, server.URL(), testToken)

	text, err := c.HandleIntent(context.Background(), map[string]interface{}{
		"name": "HassTurnOn",
		"data": map[string]interface{}{"name": "bedroom light"},
	})
	require.NoError(t, err)
	assert.Equal(t, "done", text)
}
