package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ClientRepository implementa repository.ClientRepository sobre PostgreSQL.
type ClientRepository struct {
	q Querier
}

func NewClientRepository(q Querier) *ClientRepository {
	return &ClientRepository{q: q}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (name, type, document, email, phone, address, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		client.Name, client.Type, client.Document,
		client.Email, client.Phone, client.Address, client.Status,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: documento ja cadastrado", domain.ErrDuplicate)
		}
		return fmt.Errorf("inserir cliente: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `
		SELECT id, name, type, document, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(address, ''), status, created_at
		FROM clients WHERE id = $1`

	client := &entity.Client{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&client.ID, &client.Name, &client.Type, &client.Document,
		&client.Email, &client.Phone, &client.Address, &client.Status, &client.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) GetByDocument(ctx context.Context, document string) (*entity.Client, error) {
	query := `
		SELECT id, name, type, document, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(address, ''), status, created_at
		FROM clients WHERE document = $1`

	client := &entity.Client{}
	err := r.q.QueryRow(ctx, query, document).Scan(
		&client.ID, &client.Name, &client.Type, &client.Document,
		&client.Email, &client.Phone, &client.Address, &client.Status, &client.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar cliente por documento: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, name, type, document, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(address, ''), status, created_at
		FROM clients
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*entity.Client, 0)
	for rows.Next() {
		client := &entity.Client{}
		if err := rows.Scan(
			&client.ID, &client.Name, &client.Type, &client.Document,
			&client.Email, &client.Phone, &client.Address, &client.Status, &client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ler cliente: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}
