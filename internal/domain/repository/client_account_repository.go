package repository

import (
	"context"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// AccountFilter filtros opcionais da listagem de contas.
type AccountFilter struct {
	ClientID int64  // 0 = todos
	Status   string // vazio = todos
}

// ClientAccountRepository define o porto de persistência para contas de
// cliente (recebíveis). Create é usado dentro de transações para o
// cadastro atômico de planos parcelados.
type ClientAccountRepository interface {
	Create(ctx context.Context, account *entity.ClientAccount) error
	List(ctx context.Context, filter AccountFilter) ([]*entity.ClientAccount, error)
	// EscalateOverdue promove open -> overdue para contas vencidas antes de today.
	// Retorna o número de linhas alteradas.
	EscalateOverdue(ctx context.Context, today time.Time) (int64, error)
	// MarkPaid marca a conta como paga. Retorna false se a conta não existe.
	MarkPaid(ctx context.Context, id int64, paidDate time.Time) (bool, error)
	// Delete remove a conta. Retorna false se a conta não existe.
	Delete(ctx context.Context, id int64) (bool, error)
}
