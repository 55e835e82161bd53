package repository

import (
	"time"

	"github.com/epicontrol/epi-api/internal/domain/entity"
)

// ReturnRepository define o porto de persistência para Return.
// Apenas inserção e leitura: devoluções são imutáveis.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Return, error)
	ListByEmployee(employeeID string, limit, offset int) ([]*entity.Return, error)
}
