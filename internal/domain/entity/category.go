package entity

import "time"

// Category representa uma categoria de EPIs.
// Não pode ser removida enquanto houver produtos referenciando-a.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
