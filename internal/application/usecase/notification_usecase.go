package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// Limite de notificações devolvidas por listagem.
const notificationListLimit = 100

// NotificationUseCase listagem e gestão de notificações do usuário.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase constrói o caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List devolve broadcasts e notificações próprias, não lidas primeiro.
func (uc *NotificationUseCase) List(ctx context.Context, userID int64) ([]*entity.Notification, error) {
	return uc.repo.ListForUser(ctx, userID, notificationListLimit)
}

// Create cria uma notificação manual. userID nil = broadcast.
func (uc *NotificationUseCase) Create(ctx context.Context, targetUserID *int64, title, message, notifType string) (*entity.Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, domain.ErrInvalidInput
	}
	if notifType == "" {
		notifType = entity.NotificationTypeInfo
	}

	notification := &entity.Notification{
		UserID:  targetUserID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := uc.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("criar notificacao: %w", err)
	}
	return notification, nil
}

// MarkAsRead marca a notificação como lida para o usuário.
func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, id, userID int64) error {
	ok, err := uc.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("marcar notificacao: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
