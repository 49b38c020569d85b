package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre PostgreSQL.
type ProductRepository struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepository {
	return &ProductRepository{q: q}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id, name, COALESCE(category, ''), price, stock, status, created_at`

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, price, stock, status)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Stock, product.Status,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserir produto: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate bloqueia a linha do produto até o fim da transação corrente.
// Só faz sentido quando o Querier é uma transação.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepository) get(ctx context.Context, query string, id int64) (*entity.Product, error) {
	product := &entity.Product{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Category,
		&product.Price, &product.Stock, &product.Status, &product.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, category = NULLIF($3, ''), price = $4, stock = $5, status = $6
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category,
		product.Price, product.Stock, product.Status,
	)
	if err != nil {
		return false, fmt.Errorf("atualizar produto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		product := &entity.Product{}
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Category,
			&product.Price, &product.Stock, &product.Status, &product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ler produto: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("excluir produto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DecrementStock subtrai qty com recheck de disponibilidade no próprio
// UPDATE: se o estoque for menor que qty nenhuma linha é alterada.
func (r *ProductRepository) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2`

	tag, err := r.q.Exec(ctx, query, id, qty)
	if err != nil {
		return false, fmt.Errorf("baixar estoque: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
