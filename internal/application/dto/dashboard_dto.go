package dto

// StockStatusCount totais de produtos por status de estoque.
type StockStatusCount struct {
	Critical  int `json:"critico"`
	Low       int `json:"baixo"`
	Attention int `json:"atencao"`
	Normal    int `json:"normal"`
}

// DashboardResponse resumo para o painel.
type DashboardResponse struct {
	TotalProducts     int                   `json:"total_products"`
	StatusCounts      StockStatusCount      `json:"status_counts"`
	LowStock          []StockAlertDTO       `json:"low_stock"`
	RecentWithdrawals []*WithdrawalResponse `json:"recent_withdrawals"`
}

// StockAlertDTO produto abaixo do normal, com status derivado.
type StockAlertDTO struct {
	ProductID      string `json:"product_id"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name"`
	StockAvailable int    `json:"stock_available"`
	MinStock       int    `json:"min_stock"`
	Status         string `json:"status"`
}

// ReasonCountDTO retiradas agrupadas por motivo.
type ReasonCountDTO struct {
	Reason   string `json:"reason"`
	Total    int    `json:"total"`
	Quantity int    `json:"quantity"`
}

// EmployeeBalanceDTO saldo retrospectivo de EPIs em posse de um funcionário.
type EmployeeBalanceDTO struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Withdrawn    int    `json:"withdrawn"`
	Returned     int    `json:"returned"`
	Outstanding  int    `json:"outstanding"`
}
