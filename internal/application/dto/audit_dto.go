package dto

import "time"

// AuditLogRequest filtros de consulta da trilha de auditoria.
// From/To no formato YYYY-MM-DD (interpretados no handler).
type AuditLogRequest struct {
	UserID string `query:"user_id"`
	Action string `query:"action"`
	Entity string `query:"entity"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit"`
}

// AuditLogResponse entrada da trilha de auditoria.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	UserEmail string         `json:"user_email"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
