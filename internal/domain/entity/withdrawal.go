package entity

import "time"

// Motivos de retirada (conjunto fechado; mudar exige migração coordenada com a UI).
const (
	ReasonWorkUse     = "uso_trabalho"
	ReasonTraining    = "treinamento"
	ReasonReplacement = "substituicao"
	ReasonMaintenance = "manutencao"
	ReasonFirstSupply = "primeiro_fornecimento"
	ReasonOther       = "outros"
)

// ValidReason indica se o motivo pertence ao conjunto fechado.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonWorkUse, ReasonTraining, ReasonReplacement,
		ReasonMaintenance, ReasonFirstSupply, ReasonOther:
		return true
	}
	return false
}

// Withdrawal representa a saída de EPI do estoque para a posse de um funcionário.
// Imutável após criada: não há caminho de update/delete na aplicação.
type Withdrawal struct {
	ID         string
	ProductID  string
	EmployeeID string
	Quantity   int
	Reason     string
	CreatedBy  string // usuário do sistema que registrou
	CreatedAt  time.Time
}
