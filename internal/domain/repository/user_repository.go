package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// UserRepository define o porto de persistência de usuários internos.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	TouchLastAccess(ctx context.Context, id int64) error
}
