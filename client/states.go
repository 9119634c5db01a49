package client

import (
	"context"
	"fmt"

	"github.com/hausnet/hass-go/models"
)

// GetStates fetches the state of every entity from /api/states.
func (c *Client) GetStates(ctx context.Context) ([]models.State, error) {
	var states []models.State
	if err := c.getJSON(ctx, "/api/states", "", &states); err != nil {
		return nil, err
	}
	return states, nil
}

// GetState fetches the state of a single entity from /api/states/<id>.
func (c *Client) GetState(ctx context.Context, entityID string) (*models.State, error) {
	var state models.State
	if err := c.getJSON(ctx, fmt.Sprintf("/api/states/%s", entityID), "", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SetState creates or updates an entity state via POST /api/states/<id>
// and returns the state the server now holds. This writes straight to the
// state machine; it does not call any service.
func (c *Client) SetState(ctx context.Context, entityID string, update models.StateUpdate) (*models.State, error) {
	var state models.State
	if err := c.postJSON(ctx, fmt.Sprintf("/api/states/%s", entityID), "", update, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
