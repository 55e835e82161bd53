package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin      = "admin"
	RoleOperator   = "operator"
	RoleSupervisor = "supervisor"
)

// Status de usuário do sistema.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User representa um usuário do sistema (com login e papel).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano no domínio após persistir
	Name         string
	Role         string // admin, operator, supervisor
	Status       string // active, inactive
	HiredAt      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
