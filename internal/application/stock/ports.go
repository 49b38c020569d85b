package stock

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando um
// repositório de produtos atado a essa transação. Garante a atomicidade do
// consumo de estoque multi-produto.
type TxRunner interface {
	RunProducts(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
