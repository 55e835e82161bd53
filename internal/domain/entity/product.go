package entity

import "time"

// Product representa um EPI do catálogo.
// StockAvailable só é mutado pelo razão de estoque (retirada, devolução, entrada);
// o formulário de edição nunca escreve nesse campo. Invariante: nunca negativo.
type Product struct {
	ID             string
	Code           string // código interno opcional
	Name           string
	Description    string
	StockAvailable int
	MinStock       int
	Unit           string // par, unidade, caixa...
	CANumber       string // Certificado de Aprovação, opcional
	Size           string
	CategoryID     string // vazio se sem categoria
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
