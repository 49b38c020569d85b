package postgres

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ActivityLogRepository implementa repository.ActivityLogRepository
// sobre PostgreSQL.
type ActivityLogRepository struct {
	q Querier
}

func NewActivityLogRepository(q Querier) *ActivityLogRepository {
	return &ActivityLogRepository{q: q}
}

var _ repository.ActivityLogRepository = (*ActivityLogRepository)(nil)

func (r *ActivityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, action, details)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query, log.UserID, log.Action, log.Details).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserir log de atividade: %w", err)
	}
	return nil
}
