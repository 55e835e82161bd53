package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/application/usecase"
)

// DashboardHandler maneja as consultas de painel e relatórios (somente leitura).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do painel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WithdrawalsByReason godoc
// @Summary      Retiradas agrupadas por motivo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Início (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fim inclusivo (YYYY-MM-DD)"
// @Success      200   {array}  dto.ReasonCountDTO
// @Router       /api/reports/withdrawals-by-reason [get]
func (h *DashboardHandler) WithdrawalsByReason(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c.Query("from"), c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from/to no formato YYYY-MM-DD"})
	}
	out, err := h.uc.WithdrawalsByReason(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EmployeeBalances godoc
// @Summary      Saldo de EPIs em posse por funcionário
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  string  false  "Filtrar por funcionário"
// @Success      200          {array}  dto.EmployeeBalanceDTO
// @Router       /api/reports/employee-balances [get]
func (h *DashboardHandler) EmployeeBalances(c *fiber.Ctx) error {
	out, err := h.uc.EmployeeBalances(c.Query("employee_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
