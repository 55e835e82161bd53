package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/application/ledger"
	"github.com/epicontrol/epi-api/internal/application/usecase"
)

// LedgerHandler maneja as rotas do razão de estoque: retiradas, devoluções
// e entradas diretas, além das listagens de histórico.
type LedgerHandler struct {
	uc      *ledger.UseCase
	history *usecase.HistoryUseCase
}

// NewLedgerHandler constrói o handler.
func NewLedgerHandler(uc *ledger.UseCase, history *usecase.HistoryUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc, history: history}
}

// CreateWithdrawal godoc
// @Summary      Registrar retirada de EPI
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "Dados da retirada"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      409   {object}  dto.ErrorResponse  "estoque insuficiente"
// @Failure      422   {object}  dto.ErrorResponse  "funcionário inativo"
// @Router       /api/withdrawals [post]
func (h *LedgerHandler) CreateWithdrawal(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RecordWithdrawal(c.UserContext(), ledger.WithdrawalInput{
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		Actor:      GetActor(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToWithdrawalResponse(out))
}

// ListWithdrawals godoc
// @Summary      Listar retiradas
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Início (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fim inclusivo (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.WithdrawalResponse
// @Router       /api/withdrawals [get]
func (h *LedgerHandler) ListWithdrawals(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c.Query("from"), c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from/to no formato YYYY-MM-DD"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.history.ListWithdrawals(from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateReturn godoc
// @Summary      Registrar devolução de EPI
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "Dados da devolução"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      422   {object}  dto.ErrorResponse  "funcionário inativo"
// @Router       /api/returns [post]
func (h *LedgerHandler) CreateReturn(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RecordReturn(c.UserContext(), ledger.ReturnInput{
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Quantity:   in.Quantity,
		Condition:  in.Condition,
		Reason:     in.Reason,
		Actor:      GetActor(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToReturnResponse(out))
}

// ListReturns godoc
// @Summary      Listar devoluções
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Início (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fim inclusivo (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.ReturnResponse
// @Router       /api/returns [get]
func (h *LedgerHandler) ListReturns(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c.Query("from"), c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from/to no formato YYYY-MM-DD"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.history.ListReturns(from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateStockEntry godoc
// @Summary      Registrar entrada direta de estoque
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEntryRequest  true  "Dados da entrada"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *LedgerHandler) CreateStockEntry(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RecordStockEntry(c.UserContext(), ledger.EntryInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		Actor:     GetActor(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToStockMovementResponse(out))
}

// ListMovements godoc
// @Summary      Listar movimentações diretas
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Início (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fim inclusivo (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.StockMovementResponse
// @Router       /api/stock/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c.Query("from"), c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from/to no formato YYYY-MM-DD"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.history.ListMovements(from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
