package usecase

import (
	"time"

	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

// HistoryUseCase listagens de leitura do histórico de movimentações.
// As tabelas são append-only; aqui não há nenhum caminho de escrita.
type HistoryUseCase struct {
	withdrawalRepo repository.WithdrawalRepository
	returnRepo     repository.ReturnRepository
	movementRepo   repository.StockMovementRepository
}

// NewHistoryUseCase constrói o caso de uso.
func NewHistoryUseCase(
	withdrawalRepo repository.WithdrawalRepository,
	returnRepo repository.ReturnRepository,
	movementRepo repository.StockMovementRepository,
) *HistoryUseCase {
	return &HistoryUseCase{
		withdrawalRepo: withdrawalRepo,
		returnRepo:     returnRepo,
		movementRepo:   movementRepo,
	}
}

// ListWithdrawals lista retiradas num período.
func (uc *HistoryUseCase) ListWithdrawals(from, to *time.Time, page dto.PageRequest) ([]*dto.WithdrawalResponse, error) {
	page.DefaultPage()
	withdrawals, err := uc.withdrawalRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		out = append(out, ToWithdrawalResponse(w))
	}
	return out, nil
}

// ListWithdrawalsByEmployee lista retiradas de um funcionário.
func (uc *HistoryUseCase) ListWithdrawalsByEmployee(employeeID string, page dto.PageRequest) ([]*dto.WithdrawalResponse, error) {
	page.DefaultPage()
	withdrawals, err := uc.withdrawalRepo.ListByEmployee(employeeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		out = append(out, ToWithdrawalResponse(w))
	}
	return out, nil
}

// ListReturns lista devoluções num período.
func (uc *HistoryUseCase) ListReturns(from, to *time.Time, page dto.PageRequest) ([]*dto.ReturnResponse, error) {
	page.DefaultPage()
	returns, err := uc.returnRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReturnResponse, 0, len(returns))
	for _, ret := range returns {
		out = append(out, ToReturnResponse(ret))
	}
	return out, nil
}

// ListMovements lista movimentações diretas num período.
func (uc *HistoryUseCase) ListMovements(from, to *time.Time, page dto.PageRequest) ([]*dto.StockMovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.movementRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToStockMovementResponse(m))
	}
	return out, nil
}

// ToWithdrawalResponse converte a entidade para o DTO de resposta.
func ToWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	return &dto.WithdrawalResponse{
		ID:         w.ID,
		ProductID:  w.ProductID,
		EmployeeID: w.EmployeeID,
		Quantity:   w.Quantity,
		Reason:     w.Reason,
		CreatedBy:  w.CreatedBy,
		CreatedAt:  w.CreatedAt,
	}
}

// ToReturnResponse converte a entidade para o DTO de resposta.
func ToReturnResponse(ret *entity.Return) *dto.ReturnResponse {
	return &dto.ReturnResponse{
		ID:         ret.ID,
		ProductID:  ret.ProductID,
		EmployeeID: ret.EmployeeID,
		Quantity:   ret.Quantity,
		Condition:  ret.Condition,
		Reason:     ret.Reason,
		CreatedBy:  ret.CreatedBy,
		CreatedAt:  ret.CreatedAt,
	}
}

// ToStockMovementResponse converte a entidade para o DTO de resposta.
func ToStockMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
