package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// FinancialHandler rotas do livro-caixa.
type FinancialHandler struct {
	uc *usecase.FinancialUseCase
}

// NewFinancialHandler constrói o handler.
func NewFinancialHandler(uc *usecase.FinancialUseCase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// Create registra um lançamento (POST /api/financials).
func (h *FinancialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date invalida (use YYYY-MM-DD)"})
	}

	entry, err := h.uc.Create(c.Context(), usecase.FinancialInput{
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
		ClientID:    in.ClientID,
		CreatedBy:   GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFinancialResponse(entry))
}

// List lista lançamentos, mais recentes primeiro (GET /api/financials).
func (h *FinancialHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)

	entries, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.FinancialResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toFinancialResponse(entry))
	}
	return c.JSON(out)
}

func toFinancialResponse(entry *entity.Financial) dto.FinancialResponse {
	return dto.FinancialResponse{
		ID:          entry.ID,
		Type:        entry.Type,
		Amount:      entry.Amount,
		Category:    entry.Category,
		Description: entry.Description,
		Date:        entry.Date.Format(dateLayout),
		ClientID:    entry.ClientID,
		CreatedBy:   entry.CreatedBy,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}
