package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// NotificationHandler rotas de notificações.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler constrói o handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List lista broadcasts e notificações do usuário (GET /api/notifications).
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	return c.JSON(out)
}

// Create cria uma notificação manual (POST /api/notifications, admin).
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	notification, err := h.uc.Create(c.Context(), in.UserID, in.Title, in.Message, in.Type)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toNotificationResponse(notification))
}

// MarkRead marca como lida (PATCH /api/notifications/:id/read).
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	if err := h.uc.MarkAsRead(c.Context(), id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notificacao marcada como lida"})
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
