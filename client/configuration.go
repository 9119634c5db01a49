package client

import (
	"context"

	"github.com/hausnet/hass-go/models"
)

// GetConfig fetches the server configuration from /api/config.
func (c *Client) GetConfig(ctx context.Context) (*models.Config, error) {
	var cfg models.Config
	if err := c.getJSON(ctx, "/api/config", "", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CheckConfig asks the server to validate its configuration via
// POST /api/config/core/check_config.
func (c *Client) CheckConfig(ctx context.Context) (*models.ConfigCheck, error) {
	var check models.ConfigCheck
	if err := c.postJSON(ctx, "/api/config/core/check_config", "", map[string]interface{}{}, &check); err != nil {
		return nil, err
	}
	return &check, nil
}
