// Package ledger implementa o razão de estoque: as operações que movem EPIs
// para dentro e para fora do inventário. Cada operação valida, aplica a
// mutação de estoque junto com a inserção do evento imutável numa única
// transação e, após o commit, registra a auditoria em melhor esforço.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/domain"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

// opTimeout prazo máximo de uma operação de escrita. Expirado, o chamador
// recebe um erro e pode repetir: não há escrita parcial fora da transação.
const opTimeout = 10 * time.Second

// UseCase casos de uso do razão de estoque.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
	audit        AuditRecorder
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	auditRecorder AuditRecorder,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		audit:        auditRecorder,
	}
}

// WithdrawalInput entrada para RecordWithdrawal.
type WithdrawalInput struct {
	ProductID  string
	EmployeeID string
	Quantity   int
	Reason     string
	Actor      audit.Actor
}

// ReturnInput entrada para RecordReturn.
type ReturnInput struct {
	ProductID  string
	EmployeeID string
	Quantity   int
	Condition  string
	Reason     string // opcional
	Actor      audit.Actor
}

// EntryInput entrada para RecordStockEntry.
type EntryInput struct {
	ProductID string
	Quantity  int
	Notes     string
	Actor     audit.Actor
}

// RecordWithdrawal registra a saída de EPI para um funcionário.
//
// A verificação de saldo e o decremento são um único UPDATE condicional
// dentro da mesma transação que insere a retirada: duas retiradas
// concorrentes sobre o último item resultam em exatamente um sucesso e um
// domain.ErrInsufficientStock, nunca estoque negativo.
//
// Operações não são idempotentes: cada chamada é um novo evento.
func (uc *UseCase) RecordWithdrawal(ctx context.Context, in WithdrawalInput) (*entity.Withdrawal, error) {
	if in.ProductID == "" || in.EmployeeID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidReason(in.Reason) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if !employee.IsActive() {
		return nil, domain.ErrEmployeeInactive
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	withdrawal := &entity.Withdrawal{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		CreatedBy:  in.Actor.UserID,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		withdrawals repository.WithdrawalRepository,
		_ repository.ReturnRepository,
		_ repository.StockMovementRepository,
	) error {
		ok, err := products.DecrementStock(in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Produto existe (verificado acima); zero linhas afetadas = sem saldo.
			return domain.ErrInsufficientStock
		}
		return withdrawals.Create(withdrawal)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(in.Actor, "registrou retirada", "retirada", map[string]any{
		"product":  product.Name,
		"employee": employee.FullName,
		"quantity": in.Quantity,
		"reason":   in.Reason,
	})
	return withdrawal, nil
}

// RecordReturn registra a volta de EPI de um funcionário para o estoque.
// Não há teto contra o saldo em posse do funcionário: devoluções válidas
// sempre têm sucesso, independente do histórico de retiradas.
func (uc *UseCase) RecordReturn(ctx context.Context, in ReturnInput) (*entity.Return, error) {
	if in.ProductID == "" || in.EmployeeID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCondition(in.Condition) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if !employee.IsActive() {
		return nil, domain.ErrEmployeeInactive
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ret := &entity.Return{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Quantity:   in.Quantity,
		Condition:  in.Condition,
		Reason:     in.Reason,
		CreatedBy:  in.Actor.UserID,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.WithdrawalRepository,
		returns repository.ReturnRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := products.IncrementStock(in.ProductID, in.Quantity); err != nil {
			return err
		}
		return returns.Create(ret)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(in.Actor, "registrou devolucao", "devolucao", map[string]any{
		"product":   product.Name,
		"employee":  employee.FullName,
		"quantity":  in.Quantity,
		"condition": in.Condition,
	})
	return ret, nil
}

// RecordStockEntry registra um recebimento direto de estoque (entrada),
// fora do ciclo retirada/devolução. O operador é o usuário autenticado.
// Não gera entrada de auditoria.
func (uc *UseCase) RecordStockEntry(ctx context.Context, in EntryInput) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.Quantity < 1 || in.Actor.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	operator, err := uc.userRepo.GetByID(in.Actor.UserID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		UserID:    operator.ID,
		Type:      entity.MovementIn,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.WithdrawalRepository,
		_ repository.ReturnRepository,
		movements repository.StockMovementRepository,
	) error {
		if err := products.IncrementStock(in.ProductID, in.Quantity); err != nil {
			return err
		}
		return movements.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
