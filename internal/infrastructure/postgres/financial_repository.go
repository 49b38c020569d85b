package postgres

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// FinancialRepository implementa repository.FinancialRepository sobre PostgreSQL.
type FinancialRepository struct {
	q Querier
}

func NewFinancialRepository(q Querier) *FinancialRepository {
	return &FinancialRepository{q: q}
}

var _ repository.FinancialRepository = (*FinancialRepository)(nil)

func (r *FinancialRepository) Create(ctx context.Context, entry *entity.Financial) error {
	query := `
		INSERT INTO financials (type, amount, category, description, date, client_id, created_by)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		entry.Type, entry.Amount, entry.Category, entry.Description,
		entry.Date, entry.ClientID, entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserir lancamento: %w", err)
	}
	return nil
}

func (r *FinancialRepository) List(ctx context.Context, limit, offset int) ([]*entity.Financial, error) {
	query := `
		SELECT id, type, amount, COALESCE(category, ''), description, date,
		       client_id, created_by, created_at
		FROM financials
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar lancamentos: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.Financial, 0)
	for rows.Next() {
		entry := &entity.Financial{}
		if err := rows.Scan(
			&entry.ID, &entry.Type, &entry.Amount, &entry.Category, &entry.Description,
			&entry.Date, &entry.ClientID, &entry.CreatedBy, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ler lancamento: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
