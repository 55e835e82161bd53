package repository

import (
	"time"

	"github.com/epicontrol/epi-api/internal/domain/entity"
)

// AuditLogFilter filtros opcionais para consulta da trilha de auditoria.
type AuditLogFilter struct {
	UserID   string
	Action   string
	Entity   string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int // teto aplicado pelo caso de uso (máx. 500)
}

// AuditLogRepository define o porto de persistência para AuditLog. Append-only.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(filter AuditLogFilter) ([]*entity.AuditLog, error)
	DistinctActions() ([]string, error)
	DistinctEntities() ([]string, error)
}
