package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/hausnet/hass-go/models"
)

// HistoryOptions narrows a /api/history/period query. The boolean options
// are presence flags; the server only checks that the parameter exists.
type HistoryOptions struct {
	EntityID               string
	MinimalResponse        bool
	NoAttributes           bool
	SignificantChangesOnly bool
}

func (o HistoryOptions) queryString() string {
	var parts []string
	if o.EntityID != "" {
		parts = append(parts, "filter_entity_id="+url.QueryEscape(o.EntityID))
	}
	if o.MinimalResponse {
		parts = append(parts, "minimal_response")
	}
	if o.NoAttributes {
		parts = append(parts, "no_attributes")
	}
	if o.SignificantChangesOnly {
		parts = append(parts, "significant_changes_only")
	}
	return strings.Join(parts, "&")
}

// GetHistory fetches state history from /api/history/period. The server
// groups entries per entity; the groups are flattened into a single slice.
func (c *Client) GetHistory(ctx context.Context, opts HistoryOptions) ([]models.HistoryEntry, error) {
	var grouped [][]models.HistoryEntry
	if err := c.getJSON(ctx, "/api/history/period", opts.queryString(), &grouped); err != nil {
		return nil, err
	}

	var entries []models.HistoryEntry
	for _, group := range grouped {
		entries = append(entries, group...)
	}
	return entries, nil
}
