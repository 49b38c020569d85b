package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// FinancialRepository define o porto de persistência do livro-caixa.
type FinancialRepository interface {
	Create(ctx context.Context, entry *entity.Financial) error
	List(ctx context.Context, limit, offset int) ([]*entity.Financial, error)
}
