package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/hausnet/hass-go/models"
)

// RenderTemplate renders a Home Assistant template via POST /api/template
// and returns the rendered text.
func (c *Client) RenderTemplate(ctx context.Context, template string) (string, error) {
	resp, err := c.do(ctx, resty.MethodPost, "/api/template", "",
		models.TemplateRequest{Template: template})
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// HandleIntent submits an intent to POST /api/intent/handle and returns the
// raw response text.
func (c *Client) HandleIntent(ctx context.Context, data map[string]interface{}) (string, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	resp, err := c.do(ctx, resty.MethodPost, "/api/intent/handle", "", data)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}
