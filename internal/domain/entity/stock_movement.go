package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementIn  = "entrada"
	MovementOut = "saida"
)

// StockMovement representa um ajuste genérico de estoque, distinto da
// semântica de retirada/devolução. Usado para recebimentos diretos (entrada).
type StockMovement struct {
	ID        string
	ProductID string
	UserID    string // operador que registrou
	Type      string // entrada, saida
	Quantity  int
	Notes     string
	CreatedAt time.Time
}
