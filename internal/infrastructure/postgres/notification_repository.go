package postgres

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// NotificationRepository implementa repository.NotificationRepository
// sobre PostgreSQL.
type NotificationRepository struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepository {
	return &NotificationRepository{q: q}
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		notification.UserID, notification.Title, notification.Message,
		notification.Type, notification.IsRead,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserir notificacao: %w", err)
	}
	return nil
}

// ExistsBroadcastToday é a âncora da deduplicação diária: uma notificação
// broadcast idêntica criada hoje bloqueia novos envios até o dia virar.
func (r *NotificationRepository) ExistsBroadcastToday(ctx context.Context, title, message string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id IS NULL
			  AND title = $1
			  AND message = $2
			  AND created_at::date = CURRENT_DATE
		)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, title, message).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar notificacao do dia: %w", err)
	}
	return exists, nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE user_id IS NULL OR user_id = $1
		ORDER BY is_read ASC, created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listar notificacoes: %w", err)
	}
	defer rows.Close()

	notifications := make([]*entity.Notification, 0)
	for rows.Next() {
		n := &entity.Notification{}
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ler notificacao: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`

	tag, err := r.q.Exec(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("marcar notificacao lida: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
