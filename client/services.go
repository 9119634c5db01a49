package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/hausnet/hass-go/models"
)

// GetServices lists the registered services per domain from /api/services.
func (c *Client) GetServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.getJSON(ctx, "/api/services", "", &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CallService invokes a service via POST /api/services/<domain>/<service>.
// When returnResponse is set, the server is asked to include the service's
// response data; the body is returned raw because its shape depends on the
// service called.
func (c *Client) CallService(ctx context.Context, domain, service string, data map[string]interface{}, returnResponse bool) (json.RawMessage, error) {
	if data == nil {
		data = map[string]interface{}{}
	}

	query := ""
	if returnResponse {
		query = "return_response"
	}

	resp, err := c.do(ctx, resty.MethodPost, fmt.Sprintf("/api/services/%s/%s", domain, service), query, data)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body()), nil
}
