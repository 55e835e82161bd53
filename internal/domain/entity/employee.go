package entity

import "time"

// Status de funcionário.
const (
	EmployeeActive   = "ativo"
	EmployeeInactive = "inativo"
)

// Employee representa um funcionário da empresa sem login no sistema,
// usado apenas como destinatário de retiradas e devoluções.
type Employee struct {
	ID           string
	FullName     string
	Registration string // matrícula, única
	Department   string
	Status       string // ativo, inativo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica se o funcionário pode receber retiradas.
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeActive
}
