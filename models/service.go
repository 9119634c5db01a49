package models

import "encoding/json"

// Service describes one domain's registered services as returned by
// /api/services. The per-service payload varies by integration, so it is
// kept raw for the caller to interpret.
type Service struct {
	Domain   string                     `json:"domain"`
	Services map[string]json.RawMessage `json:"services"`
}
