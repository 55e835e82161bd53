package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

const withdrawalColumns = `id, product_id, employee_id, quantity, reason, created_by, created_at`

// WithdrawalRepo implementação sobre PostgreSQL (usável com pool ou tx).
// A tabela é append-only: não há UPDATE nem DELETE.
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste uma retirada.
func (r *WithdrawalRepo) Create(withdrawal *entity.Withdrawal) error {
	createdBy := nullIfEmpty(withdrawal.CreatedBy)
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO withdrawals (id, product_id, employee_id, quantity, reason, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		withdrawal.ID, withdrawal.ProductID, withdrawal.EmployeeID,
		withdrawal.Quantity, withdrawal.Reason, createdBy, withdrawal.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID obtém uma retirada por ID.
func (r *WithdrawalRepo) GetByID(id string) (*entity.Withdrawal, error) {
	var w entity.Withdrawal
	var createdBy *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id).
		Scan(&w.ID, &w.ProductID, &w.EmployeeID, &w.Quantity, &w.Reason, &createdBy, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	if createdBy != nil {
		w.CreatedBy = *createdBy
	}
	return &w, nil
}

// List lista retiradas num período, mais recentes primeiro.
func (r *WithdrawalRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE 1=1`
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
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return scanWithdrawals(rows)
}

// ListByEmployee lista retiradas de um funcionário.
func (r *WithdrawalRepo) ListByEmployee(employeeID string, limit, offset int) ([]*entity.Withdrawal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE employee_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals by employee: %w", err)
	}
	return scanWithdrawals(rows)
}

// ListByProduct lista retiradas de um produto.
func (r *WithdrawalRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Withdrawal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE product_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals by product: %w", err)
	}
	return scanWithdrawals(rows)
}

func scanWithdrawals(rows pgx.Rows) ([]*entity.Withdrawal, error) {
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		var createdBy *string
		if err := rows.Scan(&w.ID, &w.ProductID, &w.EmployeeID, &w.Quantity, &w.Reason, &createdBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		if createdBy != nil {
			w.CreatedBy = *createdBy
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
