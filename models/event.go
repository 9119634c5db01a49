package models

// Event is a registered event type and its listener count, as returned by
// /api/events.
type Event struct {
	Event         string `json:"event"`
	ListenerCount int    `json:"listener_count"`
}

// APIMessage is the generic acknowledgement body some write endpoints
// return, e.g. firing an event.
type APIMessage struct {
	Message string `json:"message"`
}
