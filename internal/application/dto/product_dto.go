package dto

import "time"

// ProductRequest body para criação/edição de produto.
// Estoque disponível não aparece aqui: só o razão de estoque o altera.
type ProductRequest struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MinStock    int    `json:"min_stock"`
	Unit        string `json:"unit"`
	CANumber    string `json:"ca_number,omitempty"`
	Size        string `json:"size,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	// InitialStock só é considerado na criação.
	InitialStock int `json:"initial_stock,omitempty"`
}

// ProductResponse produto com o status de estoque derivado.
type ProductResponse struct {
	ID             string    `json:"id"`
	Code           string    `json:"code,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	StockAvailable int       `json:"stock_available"`
	MinStock       int       `json:"min_stock"`
	Unit           string    `json:"unit"`
	CANumber       string    `json:"ca_number,omitempty"`
	Size           string    `json:"size,omitempty"`
	CategoryID     string    `json:"category_id,omitempty"`
	StockStatus    string    `json:"stock_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CategoryRequest body para criação/edição de categoria.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse categoria.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
