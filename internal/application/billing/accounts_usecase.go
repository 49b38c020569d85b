package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/escritoriopro/backoffice-api/pkg/logger"
)

// AccountsUseCase consultas e mutações unitárias de contas de cliente:
// listagem (com escalonamento de vencidas e notificador), recebimento e
// exclusão.
type AccountsUseCase struct {
	accountRepo repository.ClientAccountRepository
	notifier    *DueNotifier
	audit       audit.Recorder
	log         *logger.Logger
	now         func() time.Time
}

// NewAccountsUseCase constrói o caso de uso.
func NewAccountsUseCase(accountRepo repository.ClientAccountRepository, notifier *DueNotifier, recorder audit.Recorder, log *logger.Logger) *AccountsUseCase {
	return &AccountsUseCase{
		accountRepo: accountRepo,
		notifier:    notifier,
		audit:       recorder,
		log:         log,
		now:         time.Now,
	}
}

// List promove contas abertas vencidas para overdue, devolve as contas
// ordenadas (vencidas, abertas, pagas; vencimento ascendente dentro de cada
// grupo) e dispara o notificador de vencimentos como efeito colateral.
func (uc *AccountsUseCase) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.ClientAccount, error) {
	if _, err := uc.accountRepo.EscalateOverdue(ctx, uc.now()); err != nil {
		// A listagem não falha por causa do escalonamento; o notificador
		// ainda cobre contas vencidas pelo vencimento.
		uc.log.Warn().Err(err).Msg("falha ao escalonar contas vencidas")
	}

	accounts, err := uc.accountRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}

	uc.notifier.Evaluate(ctx, accounts)

	return accounts, nil
}

// MarkAsPaid registra o recebimento da conta. paidDate nil vale hoje.
func (uc *AccountsUseCase) MarkAsPaid(ctx context.Context, id int64, paidDate *time.Time, actorID int64) error {
	when := uc.now()
	if paidDate != nil {
		when = *paidDate
	}

	ok, err := uc.accountRepo.MarkPaid(ctx, id, when)
	if err != nil {
		return fmt.Errorf("registrar recebimento: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	uc.audit.Record(ctx, actorID, "CLIENT_ACCOUNT_PAID", fmt.Sprintf("Conta %d marcada como recebida", id))
	return nil
}

// Delete exclui uma conta individual (ação privilegiada, autorizada no handler).
func (uc *AccountsUseCase) Delete(ctx context.Context, id, actorID int64) error {
	ok, err := uc.accountRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("excluir conta: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	uc.audit.Record(ctx, actorID, "CLIENT_ACCOUNT_DELETED", fmt.Sprintf("Conta %d excluida", id))
	return nil
}
