package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ClientHandler rotas do cadastro de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create cadastra um cliente (POST /api/clients).
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	client, err := h.uc.Create(c.Context(), GetUserID(c), usecase.ClientInput{
		Name:     in.Name,
		Type:     in.Type,
		Document: in.Document,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toClientResponse(client))
}

// GetByID devolve um cliente (GET /api/clients/:id).
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	client, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toClientResponse(client))
}

// List lista clientes com paginação (GET /api/clients).
func (h *ClientHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	clients, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}
	return c.JSON(out)
}

func toClientResponse(client *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Type:      client.Type,
		Document:  client.Document,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		Status:    client.Status,
		CreatedAt: client.CreatedAt.Format(time.RFC3339),
	}
}
