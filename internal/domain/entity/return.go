package entity

import "time"

// Condições do EPI devolvido (conjunto fechado).
const (
	ConditionGood    = "bom"
	ConditionDamaged = "danificado"
	ConditionWornOut = "desgastado"
	ConditionExpired = "vencido"
)

// ValidCondition indica se a condição pertence ao conjunto fechado.
func ValidCondition(condition string) bool {
	switch condition {
	case ConditionGood, ConditionDamaged, ConditionWornOut, ConditionExpired:
		return true
	}
	return false
}

// Return representa a volta de EPI da posse de um funcionário para o estoque.
// Imutável após criada. Não há teto contra o saldo em posse do funcionário:
// esse saldo só é derivado retrospectivamente em relatório.
type Return struct {
	ID         string
	ProductID  string
	EmployeeID string
	Quantity   int
	Condition  string
	Reason     string // opcional
	CreatedBy  string
	CreatedAt  time.Time
}
