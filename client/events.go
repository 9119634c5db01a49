package client

import (
	"context"
	"fmt"

	"github.com/hausnet/hass-go/models"
)

// GetEvents lists the registered event types from /api/events.
func (c *Client) GetEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/api/events", "", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FireEvent fires an event on the server's bus via POST /api/events/<type>.
// data may be nil for events without payload.
func (c *Client) FireEvent(ctx context.Context, eventType string, data map[string]interface{}) (*models.APIMessage, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	var msg models.APIMessage
	if err := c.postJSON(ctx, fmt.Sprintf("/api/events/%s", eventType), "", data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
