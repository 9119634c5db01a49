package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CameraProxy fetches a camera snapshot from /api/camera_proxy/<id>. The
// at parameter selects the frame closest to that time.
func (c *Client) CameraProxy(ctx context.Context, entityID string, at time.Time) ([]byte, error) {
	resp, err := c.do(ctx, resty.MethodGet,
		fmt.Sprintf("/api/camera_proxy/%s", entityID),
		fmt.Sprintf("time=%d", at.Unix()),
		nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
