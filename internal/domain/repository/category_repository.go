package repository

import "github.com/epicontrol/epi-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
// Delete devolve domain.ErrInUse quando a categoria ainda é referenciada por produtos.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
