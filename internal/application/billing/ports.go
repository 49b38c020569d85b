package billing

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando um
// repositório de contas atado a essa transação. Garante o tudo-ou-nada do
// cadastro de planos parcelados.
type TxRunner interface {
	RunAccounts(ctx context.Context, fn func(accountRepo repository.ClientAccountRepository) error) error
}
