package client

import (
	"context"
	"net/url"

	"github.com/hausnet/hass-go/models"
)

// GetLogbook fetches logbook entries from /api/logbook. An empty entityID
// requests entries for all entities.
func (c *Client) GetLogbook(ctx context.Context, entityID string) ([]models.LogbookEntry, error) {
	query := ""
	if entityID != "" {
		query = "entity=" + url.QueryEscape(entityID)
	}

	var entries []models.LogbookEntry
	if err := c.getJSON(ctx, "/api/logbook", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
