// Package client implements a typed client for the Home Assistant REST API.
// Every call is an independent one-shot request; the client carries no state
// beyond the connection settings it was built from.
package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/hausnet/hass-go/config"
)

// Request timeout applied by default. TLS verification is left on; both can
// be changed through the exported HTTP client.
const defaultTimeout = 30 * time.Second

// Client talks to a single Home Assistant instance.
type Client struct {
	// HTTP is the underlying resty client. It is exported so callers can
	// adjust transport details such as timeout or TLS configuration.
	HTTP   *resty.Client
	logger *zap.Logger
}

// New creates a client from resolved settings. A nil logger disables
// logging.
func New(settings config.Settings, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := resty.New().
		SetBaseURL(strings.TrimRight(settings.URL, "/")).
		SetAuthToken(settings.Token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)

	return &Client{
		HTTP:   r,
		logger: logger,
	}
}

// do issues a single request and maps non-2xx responses to APIError.
// query is a raw query string; Home Assistant checks several parameters
// (e.g. minimal_response) by presence only, no value needed.
func (c *Client) do(ctx context.Context, method, path, query string, body interface{}) (*resty.Response, error) {
	req := c.HTTP.R().SetContext(ctx)
	if query != "" {
		req.SetQueryString(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	c.logger.Debug("Sending request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}

	if resp.IsError() {
		c.logger.Error("Request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()))
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return resp, nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path, query string, out interface{}) error {
	resp, err := c.do(ctx, resty.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.decode(path, resp.Body(), out)
}

// postJSON issues a POST and decodes the response body into out. A nil out
// discards the body.
func (c *Client) postJSON(ctx context.Context, path, query string, body, out interface{}) error {
	resp, err := c.do(ctx, resty.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(path, resp.Body(), out)
}

func (c *Client) decode(path string, body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}
