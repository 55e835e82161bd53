package usecase

import (
	"time"

	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/domain/repository"
	"github.com/epicontrol/epi-api/internal/domain/stock"
)

// recentWithdrawals quantas retiradas recentes aparecem no painel.
const recentWithdrawals = 5

// DashboardUseCase consultas de leitura para o painel e relatórios.
// A classificação vem sempre de domain/stock; o SQL só devolve números crus.
type DashboardUseCase struct {
	reportRepo     repository.ReportRepository
	withdrawalRepo repository.WithdrawalRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, withdrawalRepo repository.WithdrawalRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, withdrawalRepo: withdrawalRepo}
}

// Summary monta o resumo do painel: totais por status, alertas de estoque
// e as últimas retiradas.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	levels, err := uc.reportRepo.StockLevels()
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardResponse{
		TotalProducts:     len(levels),
		LowStock:          []dto.StockAlertDTO{},
		RecentWithdrawals: []*dto.WithdrawalResponse{},
	}
	for _, l := range levels {
		status := stock.Classify(l.StockAvailable, l.MinStock)
		switch status {
		case stock.StatusCritical:
			resp.StatusCounts.Critical++
		case stock.StatusLow:
			resp.StatusCounts.Low++
		case stock.StatusAttention:
			resp.StatusCounts.Attention++
		default:
			resp.StatusCounts.Normal++
		}
		if status == stock.StatusCritical || status == stock.StatusLow {
			resp.LowStock = append(resp.LowStock, dto.StockAlertDTO{
				ProductID:      l.ProductID,
				Code:           l.Code,
				Name:           l.Name,
				StockAvailable: l.StockAvailable,
				MinStock:       l.MinStock,
				Status:         string(status),
			})
		}
	}

	recent, err := uc.withdrawalRepo.List(nil, nil, recentWithdrawals, 0)
	if err != nil {
		return nil, err
	}
	for _, w := range recent {
		resp.RecentWithdrawals = append(resp.RecentWithdrawals, ToWithdrawalResponse(w))
	}
	return resp, nil
}

// WithdrawalsByReason agrupa retiradas por motivo num período.
func (uc *DashboardUseCase) WithdrawalsByReason(from, to *time.Time) ([]dto.ReasonCountDTO, error) {
	counts, err := uc.reportRepo.WithdrawalsByReason(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReasonCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.ReasonCountDTO{Reason: c.Reason, Total: c.Total, Quantity: c.Quantity})
	}
	return out, nil
}

// EmployeeBalances deriva o saldo em posse (retirado - devolvido) de um
// funcionário. Consulta retrospectiva de relatório: não é verificada na
// escrita de devoluções, e o saldo pode inclusive ficar negativo.
func (uc *DashboardUseCase) EmployeeBalances(employeeID string) ([]dto.EmployeeBalanceDTO, error) {
	balances, err := uc.reportRepo.EmployeeBalances(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeBalanceDTO, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.EmployeeBalanceDTO{
			EmployeeID:   b.EmployeeID,
			EmployeeName: b.EmployeeName,
			ProductID:    b.ProductID,
			ProductName:  b.ProductName,
			Withdrawn:    b.Withdrawn,
			Returned:     b.Returned,
			Outstanding:  b.Outstanding,
		})
	}
	return out, nil
}
