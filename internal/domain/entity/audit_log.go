package entity

import "time"

// AuditLog registra quem fez o quê sobre qual entidade. Append-only.
// UserEmail é um snapshot: o registro permanece legível mesmo que o
// usuário seja removido depois.
type AuditLog struct {
	ID        string
	UserID    string
	UserEmail string
	Action    string         // rótulo livre, ex.: "registrou retirada"
	Entity    string         // rótulo livre, ex.: "retirada"
	Details   map[string]any // payload estruturado opcional
	CreatedAt time.Time
}
