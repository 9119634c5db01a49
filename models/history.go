package models

import "time"

// HistoryEntry is one point of an entity's state history from
// /api/history/period. With minimal_response set, the server omits
// entity_id and attributes on all but the first and last entries.
type HistoryEntry struct {
	EntityID    string                 `json:"entity_id,omitempty"`
	State       string                 `json:"state"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	LastChanged time.Time              `json:"last_changed"`
	LastUpdated time.Time              `json:"last_updated,omitempty"`
}
