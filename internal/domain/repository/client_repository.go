package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ClientRepository define o porto de persistência para clientes (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByDocument(ctx context.Context, document string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
}
