package ledger

import (
	"context"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que a mutação de estoque e a
// inserção do evento imutável aconteçam no mesmo passo atômico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		withdrawalRepo repository.WithdrawalRepository,
		returnRepo repository.ReturnRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// AuditRecorder porto para a trilha de auditoria. Chamado após o commit;
// a implementação nunca devolve erro.
type AuditRecorder interface {
	Record(actor audit.Actor, action, entityLabel string, details map[string]any)
}
