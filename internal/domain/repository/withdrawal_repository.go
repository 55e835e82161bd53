package repository

import (
	"time"

	"github.com/epicontrol/epi-api/internal/domain/entity"
)

// WithdrawalRepository define o porto de persistência para Withdrawal.
// Apenas inserção e leitura: retiradas são imutáveis.
type WithdrawalRepository interface {
	Create(withdrawal *entity.Withdrawal) error
	GetByID(id string) (*entity.Withdrawal, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Withdrawal, error)
	ListByEmployee(employeeID string, limit, offset int) ([]*entity.Withdrawal, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Withdrawal, error)
}
