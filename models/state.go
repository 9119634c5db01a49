package models

import "time"

// State represents an entity state as returned by /api/states.
type State struct {
	EntityID     string                 `json:"entity_id"`
	State        string                 `json:"state"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	LastChanged  time.Time              `json:"last_changed"`
	LastReported time.Time              `json:"last_reported,omitempty"`
	LastUpdated  time.Time              `json:"last_updated"`
	Context      *Context               `json:"context,omitempty"`
}

// Context identifies what triggered a state change.
type Context struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}

// StateUpdate is the request body for creating or updating a state via
// POST /api/states/<entity_id>.
type StateUpdate struct {
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}
