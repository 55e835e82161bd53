package repository

import "time"

// StockLevel linha crua para relatórios de estoque; a classificação
// (critico/baixo/atencao/normal) é derivada em domain/stock, nunca em SQL.
type StockLevel struct {
	ProductID      string
	Code           string
	Name           string
	StockAvailable int
	MinStock       int
}

// ReasonCount total de retiradas por motivo num período.
type ReasonCount struct {
	Reason   string
	Total    int
	Quantity int
}

// EmployeeBalance saldo retrospectivo de um funcionário para um produto:
// retirado menos devolvido. Derivado apenas para relatório, nunca
// verificado na escrita de devoluções.
type EmployeeBalance struct {
	EmployeeID   string
	EmployeeName string
	ProductID    string
	ProductName  string
	Withdrawn    int
	Returned     int
	Outstanding  int
}

// ReportRepository consultas agregadas de leitura para dashboard e relatórios.
type ReportRepository interface {
	StockLevels() ([]StockLevel, error)
	WithdrawalsByReason(from, to *time.Time) ([]ReasonCount, error)
	EmployeeBalances(employeeID string) ([]EmployeeBalance, error)
}
