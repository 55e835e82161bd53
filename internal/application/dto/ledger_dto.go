package dto

import "time"

// WithdrawalRequest body para POST /api/withdrawals.
type WithdrawalRequest struct {
	ProductID  string `json:"product_id"`
	EmployeeID string `json:"employee_id"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason"`
}

// ReturnRequest body para POST /api/returns.
type ReturnRequest struct {
	ProductID  string `json:"product_id"`
	EmployeeID string `json:"employee_id"`
	Quantity   int    `json:"quantity"`
	Condition  string `json:"condition"`
	Reason     string `json:"reason,omitempty"`
}

// StockEntryRequest body para POST /api/stock/entries.
type StockEntryRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// WithdrawalResponse retirada registrada.
type WithdrawalResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	EmployeeID string    `json:"employee_id"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReturnResponse devolução registrada.
type ReturnResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	EmployeeID string    `json:"employee_id"`
	Quantity   int       `json:"quantity"`
	Condition  string    `json:"condition"`
	Reason     string    `json:"reason,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StockMovementResponse movimentação direta registrada.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
