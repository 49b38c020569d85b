package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/escritoriopro/backoffice-api/internal/application/billing"
	"github.com/escritoriopro/backoffice-api/internal/application/stock"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// TxRunner executa casos de uso dentro de uma transação PostgreSQL,
// entregando ao callback repositórios ligados à transação. Qualquer erro
// do callback dispara rollback; commit só acontece se tudo passar.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

var (
	_ billing.TxRunner = (*TxRunner)(nil)
	_ stock.TxRunner   = (*TxRunner)(nil)
)

// RunAccounts abre uma transação e entrega um ClientAccountRepository
// transacional ao callback.
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(repository.ClientAccountRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacao: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewClientAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RunProducts abre uma transação e entrega um ProductRepository
// transacional ao callback.
func (r *TxRunner) RunProducts(ctx context.Context, fn func(repository.ProductRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacao: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
