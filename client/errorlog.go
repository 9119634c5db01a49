package client

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// GetErrorLog fetches the server's error log from /api/error_log. The body
// is plain text, returned as-is.
func (c *Client) GetErrorLog(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, resty.MethodGet, "/api/error_log", "", nil)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}
