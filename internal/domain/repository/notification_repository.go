package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// NotificationRepository define o porto de persistência de notificações.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	// ExistsBroadcastToday verifica se já existe uma notificação broadcast
	// (user_id nulo) com o mesmo título e mensagem criada no dia corrente
	// (horário local). Base da deduplicação do notificador de vencimentos.
	ExistsBroadcastToday(ctx context.Context, title, message string) (bool, error)
	// ListForUser lista broadcasts e notificações próprias, não lidas primeiro.
	ListForUser(ctx context.Context, userID int64, limit int) ([]*entity.Notification, error)
	// MarkRead marca como lida se pertence ao usuário ou é broadcast.
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
}
