// Package audit implementa a trilha de auditoria em melhor esforço:
// uma falha ao gravar o log nunca derruba a operação de negócio que o gerou.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
	"github.com/epicontrol/epi-api/pkg/logger"
)

// maxListRows teto de linhas devolvidas por consulta da trilha.
const maxListRows = 500

// Actor identifica quem executou a ação. Email é gravado como snapshot.
type Actor struct {
	UserID string
	Email  string
}

// Recorder grava e consulta entradas da trilha de auditoria.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder constrói o recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record insere uma entrada na trilha. Nunca devolve erro ao chamador:
// sem ator é no-op com warning; falha de escrita é logada e engolida.
func (r *Recorder) Record(actor Actor, action, entityLabel string, details map[string]any) {
	if actor.UserID == "" {
		r.log.Warn().
			Str("action", action).
			Str("entity", entityLabel).
			Msg("auditoria sem usuário autenticado, entrada descartada")
		return
	}
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		UserEmail: actor.Email,
		Action:    action,
		Entity:    entityLabel,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("entity", entityLabel).
			Msg("falha ao gravar auditoria")
	}
}

// ListLogs consulta a trilha, mais recentes primeiro, com teto de 500 linhas.
func (r *Recorder) ListLogs(filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	if filter.Limit <= 0 || filter.Limit > maxListRows {
		filter.Limit = maxListRows
	}
	return r.repo.List(filter)
}

// DistinctActions devolve os rótulos de ação já vistos.
func (r *Recorder) DistinctActions() ([]string, error) {
	return r.repo.DistinctActions()
}

// DistinctEntities devolve os rótulos de entidade já vistos.
func (r *Recorder) DistinctEntities() ([]string, error) {
	return r.repo.DistinctEntities()
}
