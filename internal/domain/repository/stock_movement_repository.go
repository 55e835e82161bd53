package repository

import (
	"time"

	"github.com/epicontrol/epi-api/internal/domain/entity"
)

// StockMovementRepository define o porto de persistência para movimentações diretas.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
