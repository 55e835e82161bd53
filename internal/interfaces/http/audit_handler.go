package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

// AuditHandler maneja as consultas da trilha de auditoria (somente leitura).
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler constrói o handler.
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// List godoc
// @Summary      Consultar trilha de auditoria
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por usuário"
// @Param        action   query  string  false  "Filtrar por ação"
// @Param        entity   query  string  false  "Filtrar por entidade"
// @Param        from     query  string  false  "Início (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fim inclusivo (YYYY-MM-DD)"
// @Param        limit    query  int     false  "Limite (máx. 500)"
// @Success      200      {array}  dto.AuditLogResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var in dto.AuditLogRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	from, to, ok := parseDateRange(in.From, in.To)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from/to no formato YYYY-MM-DD"})
	}
	logs, err := h.recorder.ListLogs(repository.AuditLogFilter{
		UserID:   in.UserID,
		Action:   in.Action,
		Entity:   in.Entity,
		DateFrom: from,
		DateTo:   to,
		Limit:    in.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toAuditLogResponse(l))
	}
	return c.JSON(out)
}

// Actions godoc
// @Summary      Ações distintas já registradas
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/audit-logs/actions [get]
func (h *AuditHandler) Actions(c *fiber.Ctx) error {
	actions, err := h.recorder.DistinctActions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(actions)
}

// Entities godoc
// @Summary      Entidades distintas já registradas
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/audit-logs/entities [get]
func (h *AuditHandler) Entities(c *fiber.Ctx) error {
	entities, err := h.recorder.DistinctEntities()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entities)
}

func toAuditLogResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		UserEmail: l.UserEmail,
		Action:    l.Action,
		Entity:    l.Entity,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}
