package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository sobre PostgreSQL.
type UserRepository struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

var _ repository.UserRepository = (*UserRepository)(nil)

const userColumns = `id, name, email, password_hash, role, status, created_at, last_access`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*entity.User, error) {
	user := &entity.User{}
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.CreatedAt, &user.LastAccess,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return user, nil
}

func (r *UserRepository) TouchLastAccess(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_access = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("atualizar ultimo acesso: %w", err)
	}
	return nil
}
