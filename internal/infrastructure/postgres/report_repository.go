package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/epicontrol/epi-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de leitura. O SQL devolve números crus;
// a classificação de estoque fica em domain/stock, nunca aqui.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockLevels devolve disponível e mínimo de todos os produtos.
func (r *ReportRepo) StockLevels() ([]repository.StockLevel, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name, stock_available, min_stock FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevel
	for rows.Next() {
		var l repository.StockLevel
		if err := rows.Scan(&l.ProductID, &l.Code, &l.Name, &l.StockAvailable, &l.MinStock); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// WithdrawalsByReason agrupa retiradas por motivo num período.
func (r *ReportRepo) WithdrawalsByReason(from, to *time.Time) ([]repository.ReasonCount, error) {
	query := `SELECT reason, COUNT(*), COALESCE(SUM(quantity), 0) FROM withdrawals WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " GROUP BY reason ORDER BY SUM(quantity) DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("withdrawals by reason: %w", err)
	}
	defer rows.Close()
	var list []repository.ReasonCount
	for rows.Next() {
		var c repository.ReasonCount
		if err := rows.Scan(&c.Reason, &c.Total, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan reason count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// EmployeeBalances deriva o saldo retrospectivo (retirado - devolvido) por
// produto para um funcionário. Só leitura de relatório: nunca é usado como
// pré-condição de escrita.
func (r *ReportRepo) EmployeeBalances(employeeID string) ([]repository.EmployeeBalance, error) {
	query := `
		WITH w AS (
			SELECT product_id, SUM(quantity) AS withdrawn
			FROM withdrawals WHERE employee_id = $1 GROUP BY product_id
		), ret AS (
			SELECT product_id, SUM(quantity) AS returned
			FROM returns WHERE employee_id = $1 GROUP BY product_id
		)
		SELECT e.id, e.full_name, p.id, p.name,
		       COALESCE(w.withdrawn, 0), COALESCE(ret.returned, 0)
		FROM company_employees e
		CROSS JOIN products p
		LEFT JOIN w ON w.product_id = p.id
		LEFT JOIN ret ON ret.product_id = p.id
		WHERE e.id = $1 AND (w.withdrawn IS NOT NULL OR ret.returned IS NOT NULL)
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee balances: %w", err)
	}
	defer rows.Close()
	var list []repository.EmployeeBalance
	for rows.Next() {
		var b repository.EmployeeBalance
		if err := rows.Scan(&b.EmployeeID, &b.EmployeeName, &b.ProductID, &b.ProductName, &b.Withdrawn, &b.Returned); err != nil {
			return nil, fmt.Errorf("scan employee balance: %w", err)
		}
		b.Outstanding = b.Withdrawn - b.Returned
		list = append(list, b)
	}
	return list, rows.Err()
}
