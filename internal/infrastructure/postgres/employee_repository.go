package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/epicontrol/epi-api/internal/domain"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, full_name, registration, department, status, created_at, updated_at`

// EmployeeRepo implementação sobre PostgreSQL (usável com pool ou tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste um novo funcionário. Matrícula é única.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO company_employees (id, full_name, registration, department, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		employee.ID, employee.FullName, employee.Registration, employee.Department,
		employee.Status, employee.CreatedAt, employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getBy(`id = $1`, id)
}

// GetByRegistration obtém um funcionário pela matrícula.
func (r *EmployeeRepo) GetByRegistration(registration string) (*entity.Employee, error) {
	return r.getBy(`registration = $1`, registration)
}

func (r *EmployeeRepo) getBy(where string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM company_employees WHERE `+where, arg).
		Scan(&e.ID, &e.FullName, &e.Registration, &e.Department, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update edita um funcionário existente.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE company_employees
		 SET full_name = $2, registration = $3, department = $4, status = $5, updated_at = $6
		 WHERE id = $1`,
		employee.ID, employee.FullName, employee.Registration, employee.Department,
		employee.Status, employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista funcionários com paginação.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM company_employees ORDER BY full_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Registration, &e.Department, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove um funcionário sem histórico; a FK recusa se referenciado.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company_employees WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
