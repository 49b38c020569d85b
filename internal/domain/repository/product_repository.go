package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para produtos.
// GetForUpdate e DecrementStock são usados dentro de transações para
// garantir que o estoque nunca fique negativo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (bool, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// DecrementStock subtrai qty do estoque com recheck de disponibilidade
	// (stock >= qty) no próprio UPDATE. Retorna false quando o recheck falha.
	DecrementStock(ctx context.Context, id int64, qty int) (bool, error)
}
