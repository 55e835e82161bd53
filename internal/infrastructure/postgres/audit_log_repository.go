package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementação sobre PostgreSQL. Append-only.
// user_email é snapshot (sem FK): o log permanece legível se o usuário sumir.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste uma entrada da trilha. Details vai como JSONB.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	var details []byte
	if log.Details != nil {
		var err error
		details, err = json.Marshal(log.Details)
		if err != nil {
			return fmt.Errorf("marshal audit details: %w", err)
		}
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO audit_logs (id, user_id, user_email, action, entity, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.UserID, log.UserEmail, log.Action, log.Entity, details, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List consulta a trilha com filtros opcionais, mais recentes primeiro.
// O teto de linhas vem em filter.Limit (aplicado pelo caso de uso).
func (r *AuditLogRepo) List(filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := `SELECT id, user_id, user_email, action, entity, details, created_at
		FROM audit_logs WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, filter.UserID)
		pos++
	}
	if filter.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", pos)
		args = append(args, filter.Action)
		pos++
	}
	if filter.Entity != "" {
		query += fmt.Sprintf(" AND entity = $%d", pos)
		args = append(args, filter.Entity)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, filter.Limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var details []byte
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserEmail, &l.Action, &l.Entity, &details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &l.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DistinctActions devolve os rótulos de ação já registrados.
func (r *AuditLogRepo) DistinctActions() ([]string, error) {
	return r.distinct(`SELECT DISTINCT action FROM audit_logs ORDER BY action`)
}

// DistinctEntities devolve os rótulos de entidade já registrados.
func (r *AuditLogRepo) DistinctEntities() ([]string, error) {
	return r.distinct(`SELECT DISTINCT entity FROM audit_logs ORDER BY entity`)
}

func (r *AuditLogRepo) distinct(query string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct audit labels: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan audit label: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
