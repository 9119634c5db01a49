package models

import "time"

// LogbookEntry is a single /api/logbook entry.
type LogbookEntry struct {
	Name      string    `json:"name"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source,omitempty"`
	EntityID  string    `json:"entity_id"`
	ContextID string    `json:"context_id,omitempty"`
	Domain    string    `json:"domain,omitempty"`
	When      time.Time `json:"when"`
}

// CalendarEntry is a calendar entity from /api/calendars.
type CalendarEntry struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
}
