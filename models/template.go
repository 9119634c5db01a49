package models

// TemplateRequest is the request body for POST /api/template.
type TemplateRequest struct {
	Template string `json:"template"`
}
