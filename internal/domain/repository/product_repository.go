package repository

import "github.com/epicontrol/epi-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
//
// DecrementStock é a primitiva condicional exigida pelo razão de estoque:
// verificação e decremento num único statement, rejeitando quando não há
// saldo (devolve false). Nunca dividir em read-then-write no aplicativo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// DecrementStock subtrai qty se stock_available >= qty; devolve false se a condição falhar.
	DecrementStock(productID string, qty int) (bool, error)
	// IncrementStock soma qty ao estoque disponível.
	IncrementStock(productID string, qty int) error
}
