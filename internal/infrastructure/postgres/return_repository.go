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

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

const returnColumns = `id, product_id, employee_id, quantity, condition, reason, created_by, created_at`

// ReturnRepo implementação sobre PostgreSQL (usável com pool ou tx).
// A tabela é append-only: não há UPDATE nem DELETE.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste uma devolução.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO returns (id, product_id, employee_id, quantity, condition, reason, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ret.ID, ret.ProductID, ret.EmployeeID, ret.Quantity,
		ret.Condition, ret.Reason, nullIfEmpty(ret.CreatedBy), ret.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// GetByID obtém uma devolução por ID.
func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	var ret entity.Return
	var createdBy *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+returnColumns+` FROM returns WHERE id = $1`, id).
		Scan(&ret.ID, &ret.ProductID, &ret.EmployeeID, &ret.Quantity,
			&ret.Condition, &ret.Reason, &createdBy, &ret.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	if createdBy != nil {
		ret.CreatedBy = *createdBy
	}
	return &ret, nil
}

// List lista devoluções num período, mais recentes primeiro.
func (r *ReturnRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE 1=1`
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
		return nil, fmt.Errorf("list returns: %w", err)
	}
	return scanReturns(rows)
}

// ListByEmployee lista devoluções de um funcionário.
func (r *ReturnRepo) ListByEmployee(employeeID string, limit, offset int) ([]*entity.Return, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+returnColumns+` FROM returns WHERE employee_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list returns by employee: %w", err)
	}
	return scanReturns(rows)
}

func scanReturns(rows pgx.Rows) ([]*entity.Return, error) {
	defer rows.Close()
	var list []*entity.Return
	for rows.Next() {
		var ret entity.Return
		var createdBy *string
		if err := rows.Scan(&ret.ID, &ret.ProductID, &ret.EmployeeID, &ret.Quantity,
			&ret.Condition, &ret.Reason, &createdBy, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		if createdBy != nil {
			ret.CreatedBy = *createdBy
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}
