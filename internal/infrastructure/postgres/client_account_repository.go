package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ClientAccountRepository implementa repository.ClientAccountRepository
// sobre PostgreSQL. Recebe um Querier para funcionar tanto com o pool
// quanto dentro de transações (cadastro atômico de parcelas).
type ClientAccountRepository struct {
	q Querier
}

func NewClientAccountRepository(q Querier) *ClientAccountRepository {
	return &ClientAccountRepository{q: q}
}

var _ repository.ClientAccountRepository = (*ClientAccountRepository)(nil)

func (r *ClientAccountRepository) Create(ctx context.Context, account *entity.ClientAccount) error {
	query := `
		INSERT INTO client_accounts (client_id, description, amount, due_date, status, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		account.ClientID, account.Description, account.Amount,
		account.DueDate, account.Status, account.Notes, account.CreatedBy,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserir conta: %w", err)
	}
	return nil
}

// List retorna as contas com nome do cliente, ordenadas por urgência:
// vencidas primeiro, depois abertas, depois pagas; dentro de cada grupo
// por vencimento crescente e id decrescente.
func (r *ClientAccountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.ClientAccount, error) {
	query := `
		SELECT a.id, a.client_id, c.name, a.description, a.amount, a.due_date,
		       a.status, a.paid_date, COALESCE(a.notes, ''), a.created_by, a.created_at
		FROM client_accounts a
		JOIN clients c ON c.id = a.client_id
		WHERE ($1 = 0 OR a.client_id = $1)
		  AND ($2 = '' OR a.status = $2)
		ORDER BY
			CASE a.status WHEN 'overdue' THEN 0 WHEN 'open' THEN 1 ELSE 2 END,
			a.due_date ASC,
			a.id DESC`

	rows, err := r.q.Query(ctx, query, filter.ClientID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}
	defer rows.Close()

	accounts := make([]*entity.ClientAccount, 0)
	for rows.Next() {
		account := &entity.ClientAccount{}
		if err := rows.Scan(
			&account.ID, &account.ClientID, &account.ClientName, &account.Description,
			&account.Amount, &account.DueDate, &account.Status, &account.PaidDate,
			&account.Notes, &account.CreatedBy, &account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ler conta: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *ClientAccountRepository) EscalateOverdue(ctx context.Context, today time.Time) (int64, error) {
	query := `
		UPDATE client_accounts
		SET status = 'overdue'
		WHERE status = 'open' AND due_date < $1::date`

	tag, err := r.q.Exec(ctx, query, today)
	if err != nil {
		return 0, fmt.Errorf("escalar contas vencidas: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ClientAccountRepository) MarkPaid(ctx context.Context, id int64, paidDate time.Time) (bool, error) {
	query := `
		UPDATE client_accounts
		SET status = 'paid', paid_date = $2::date
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, id, paidDate)
	if err != nil {
		return false, fmt.Errorf("marcar conta paga: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ClientAccountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM client_accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("excluir conta: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
